package reel

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookreel/internal/model/reel"
)

// SelectInputMethodRequest 选择输入方式请求
type SelectInputMethodRequest struct {
	Method string `json:"method" binding:"required"` // 输入方式：text/image/pdf/url
}

// SelectInputMethod 从首页选择输入方式并进入输入阶段
// @Summary      选择输入方式
// @Tags         流水线
// @Accept       json
// @Produce      json
// @Param        request  body      SelectInputMethodRequest  true  "请求体"
// @Success      200      {object}  map[string]interface{}    "成功响应"
// @Failure      400      {object}  ErrorResponse             "请求参数错误"
// @Failure      409      {object}  ErrorResponse             "当前阶段不允许该操作"
// @Router       /api/v1/pipeline/input-method [post]
func (h *Handler) SelectInputMethod(c *gin.Context) {
	var req SelectInputMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40001, Message: err.Error()})
		return
	}

	if err := h.svc.SelectInputMethod(reel.InputMethod(req.Method)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, h.svc.Snapshot())
}
