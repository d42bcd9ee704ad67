package reel

import (
	"github.com/gin-gonic/gin"
)

// GoHome 回到首页，清空全部会话数据槽位
// @Summary      回到首页
// @Tags         流水线
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Router       /api/v1/pipeline/home [post]
func (h *Handler) GoHome(c *gin.Context) {
	h.svc.GoHome()
	respondOK(c, h.svc.Snapshot())
}

// Back 返回上一界面
// @Summary      返回上一界面
// @Tags         流水线
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Failure      409  {object}  ErrorResponse           "当前阶段没有上一界面"
// @Router       /api/v1/pipeline/back [post]
func (h *Handler) Back(c *gin.Context) {
	if err := h.svc.Back(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, h.svc.Snapshot())
}
