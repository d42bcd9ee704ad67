package reel

import (
	"github.com/gin-gonic/gin"
)

// State 返回流水线当前状态快照
// @Summary      查询流水线状态
// @Description  返回当前阶段、各数据槽位与生成进度；编辑阶段返回的是草稿
// @Tags         流水线
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Router       /api/v1/pipeline [get]
func (h *Handler) State(c *gin.Context) {
	respondOK(c, h.svc.Snapshot())
}
