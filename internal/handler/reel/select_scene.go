package reel

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SelectSceneRequest 选择场景请求
type SelectSceneRequest struct {
	SceneID int `json:"scene_id" binding:"required"` // 分析结果中的场景ID
}

// SelectScene 选择候选场景并进入配置阶段
// @Summary      选择场景
// @Tags         流水线
// @Accept       json
// @Produce      json
// @Param        request  body      SelectSceneRequest      true  "请求体"
// @Success      200      {object}  map[string]interface{}  "成功响应"
// @Failure      400      {object}  ErrorResponse           "请求参数错误"
// @Failure      409      {object}  ErrorResponse           "场景不属于当前分析结果"
// @Router       /api/v1/pipeline/scene [post]
func (h *Handler) SelectScene(c *gin.Context) {
	var req SelectSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40001, Message: err.Error()})
		return
	}

	if err := h.svc.SelectScene(req.SceneID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, h.svc.Snapshot())
}
