package reel

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookreel/internal/model/reel"
)

// AnalyzeRequest 内容分析请求
// 文本输入放 content，图片输入放 image_base64（带可选 MIME 类型），二选一
type AnalyzeRequest struct {
	MediaKind   string `json:"media_kind" binding:"required"` // text/image
	Content     string `json:"content,omitempty"`             // 原始文本
	ImageBase64 string `json:"image_base64,omitempty"`        // 图片内容（base64）
}

// Analyze 分析输入内容并提取候选场景
// @Summary      分析内容
// @Description  把原始文本或页面图片交给模型分析，成功后进入场景选择阶段
// @Tags         流水线
// @Accept       json
// @Produce      json
// @Param        request  body      AnalyzeRequest          true  "请求体"
// @Success      200      {object}  map[string]interface{}  "成功响应"
// @Failure      400      {object}  ErrorResponse           "请求参数错误"
// @Failure      409      {object}  ErrorResponse           "当前阶段不允许该操作"
// @Failure      502      {object}  ErrorResponse           "分析阶段失败"
// @Router       /api/v1/pipeline/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40001, Message: err.Error()})
		return
	}

	kind := reel.MediaKind(req.MediaKind)
	var content []byte
	switch kind {
	case reel.MediaKindText:
		content = []byte(req.Content)
	case reel.MediaKindImage:
		decoded, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40002, Message: "image_base64 is not valid base64"})
			return
		}
		content = decoded
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40003, Message: "media_kind must be text or image"})
		return
	}

	if err := h.svc.Analyze(c.Request.Context(), content, kind); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, h.svc.Snapshot())
}
