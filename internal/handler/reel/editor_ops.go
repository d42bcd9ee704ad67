package reel

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EditorOpRequest 编辑操作请求
// op 取值：set_title / set_caption / set_shot_visual / set_shot_dialogue / delete_shot
type EditorOpRequest struct {
	Op        string `json:"op" binding:"required"` // 操作类型
	Value     string `json:"value,omitempty"`       // 文本值（set_* 操作使用，台词空串表示清除）
	ShotIndex *int   `json:"shot_index,omitempty"`  // 镜头下标（镜头级操作必填，从0开始）
}

// EditorOp 对编辑草稿应用一次结构化编辑
// @Summary      编辑草稿
// @Description  自由文本字段编辑从不失败；删除镜头会对剩余镜头重新编号，删除最后一个镜头被拒绝
// @Tags         编辑
// @Accept       json
// @Produce      json
// @Param        request  body      EditorOpRequest         true  "请求体"
// @Success      200      {object}  map[string]interface{}  "成功响应"
// @Failure      400      {object}  ErrorResponse           "请求参数错误"
// @Failure      409      {object}  ErrorResponse           "结构性约束被破坏"
// @Router       /api/v1/pipeline/editor [patch]
func (h *Handler) EditorOp(c *gin.Context) {
	var req EditorOpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40001, Message: err.Error()})
		return
	}

	var err error
	switch req.Op {
	case "set_title":
		err = h.svc.EditTitle(req.Value)
	case "set_caption":
		err = h.svc.EditCaption(req.Value)
	case "set_shot_visual":
		if req.ShotIndex == nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40002, Message: "shot_index is required"})
			return
		}
		err = h.svc.EditShotVisual(*req.ShotIndex, req.Value)
	case "set_shot_dialogue":
		if req.ShotIndex == nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40002, Message: "shot_index is required"})
			return
		}
		err = h.svc.EditShotDialogue(*req.ShotIndex, req.Value)
	case "delete_shot":
		if req.ShotIndex == nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40002, Message: "shot_index is required"})
			return
		}
		err = h.svc.DeleteShot(*req.ShotIndex)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: 40003, Message: "unsupported op: " + req.Op})
		return
	}

	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, h.svc.Snapshot())
}

// SaveEdits 提交编辑：草稿成为新的权威剧本，回到预览
// @Summary      保存编辑
// @Tags         编辑
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Failure      409  {object}  ErrorResponse           "当前阶段不允许该操作"
// @Router       /api/v1/pipeline/editor/save [post]
func (h *Handler) SaveEdits(c *gin.Context) {
	if err := h.svc.SaveEdits(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, h.svc.Snapshot())
}

// CancelEdits 放弃编辑：草稿丢弃，剧本不变，回到预览
// @Summary      取消编辑
// @Tags         编辑
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Failure      409  {object}  ErrorResponse           "当前阶段不允许该操作"
// @Router       /api/v1/pipeline/editor/cancel [post]
func (h *Handler) CancelEdits(c *gin.Context) {
	if err := h.svc.CancelEdits(); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, h.svc.Snapshot())
}
