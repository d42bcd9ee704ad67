package reel

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookreel/internal/model/reel"
)

// GenerateRequest 剧本生成请求（即生成配置）
type GenerateRequest struct {
	Style            string `json:"style" binding:"required"`             // 影视风格
	LeadActor        string `json:"lead_actor" binding:"required"`        // 男主演员
	LeadActress      string `json:"lead_actress" binding:"required"`      // 女主演员
	Supporting       string `json:"supporting,omitempty"`                 // 配角（可选）
	AudioLanguage    string `json:"audio_language" binding:"required"`    // 配音语言
	SubtitleLanguage string `json:"subtitle_language" binding:"required"` // 字幕语言（或 "None"）
	MusicMood        string `json:"music_mood" binding:"required"`        // 音乐情绪 ID
	Duration         string `json:"duration" binding:"required"`          // Reel 时长
}

// Generate 生成剧本并执行渲染子步骤，成功后进入预览阶段
// @Summary      生成剧本
// @Description  根据已选场景和配置生成分镜头剧本；失败回到配置阶段，场景保留
// @Tags         流水线
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest         true  "生成配置"
// @Success      200      {object}  map[string]interface{}  "成功响应"
// @Failure      400      {object}  ErrorResponse           "请求参数错误"
// @Failure      409      {object}  ErrorResponse           "当前阶段不允许该操作"
// @Failure      502      {object}  ErrorResponse           "生成阶段失败"
// @Router       /api/v1/pipeline/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40001, Message: err.Error()})
		return
	}

	cfg := reel.GenerationConfig{
		Style:            req.Style,
		LeadActor:        req.LeadActor,
		LeadActress:      req.LeadActress,
		Supporting:       req.Supporting,
		AudioLanguage:    req.AudioLanguage,
		SubtitleLanguage: req.SubtitleLanguage,
		MusicMood:        req.MusicMood,
		Duration:         req.Duration,
	}

	if err := h.svc.Generate(c.Request.Context(), cfg); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, h.svc.Snapshot())
}
