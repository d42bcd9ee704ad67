package reel

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PostRequest 发布请求
type PostRequest struct {
	Platforms []string `json:"platforms" binding:"required"` // 发布平台：tiktok/instagram/youtube
}

// Post 模拟把定稿 Reel 发布到所选平台
// @Summary      发布 Reel
// @Description  模拟发布；成功后 Reel 进入会话内 Feed
// @Tags         流水线
// @Accept       json
// @Produce      json
// @Param        request  body      PostRequest             true  "请求体"
// @Success      200      {object}  map[string]interface{}  "成功响应"
// @Failure      400      {object}  ErrorResponse           "请求参数错误"
// @Failure      409      {object}  ErrorResponse           "当前阶段不允许该操作"
// @Router       /api/v1/pipeline/post [post]
func (h *Handler) Post(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40001, Message: err.Error()})
		return
	}

	posted, err := h.svc.Post(c.Request.Context(), req.Platforms, h.postLatency)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, posted)
}
