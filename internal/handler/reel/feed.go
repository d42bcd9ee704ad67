package reel

import (
	"github.com/gin-gonic/gin"
)

// Feed 返回 Feed 内容（演示数据 + 会话内发布的 Reel）
// @Summary      获取 Feed
// @Tags         Feed
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Router       /api/v1/feed [get]
func (h *Handler) Feed(c *gin.Context) {
	respondOK(c, h.svc.Feed())
}

// OpenFeed 从首页进入 Feed 阶段
// @Summary      进入 Feed
// @Tags         Feed
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Failure      409  {object}  ErrorResponse           "当前阶段不允许该操作"
// @Router       /api/v1/pipeline/feed [post]
func (h *Handler) OpenFeed(c *gin.Context) {
	if err := h.svc.OpenFeed(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, h.svc.Snapshot())
}
