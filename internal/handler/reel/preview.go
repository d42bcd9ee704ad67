package reel

import (
	"github.com/gin-gonic/gin"
)

// Approve 预览确认，进入发布阶段
// @Summary      确认剧本
// @Tags         流水线
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Failure      409  {object}  ErrorResponse           "当前阶段不允许该操作"
// @Router       /api/v1/pipeline/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	if err := h.svc.Approve(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, h.svc.Snapshot())
}

// Edit 从预览进入编辑阶段（开启编辑会话，操作的是剧本深拷贝）
// @Summary      进入编辑
// @Tags         流水线
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Failure      409  {object}  ErrorResponse           "当前阶段不允许该操作"
// @Router       /api/v1/pipeline/edit [post]
func (h *Handler) Edit(c *gin.Context) {
	if err := h.svc.Edit(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, h.svc.Snapshot())
}
