package reel

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookreel/internal/model/reel"
	httputil "bookreel/internal/pkg/http"
)

// ErrorResponse 错误响应类型别名（使用共用的 http.ErrorResponse）
type ErrorResponse = httputil.ErrorResponse

// respondError 按错误类型映射统一错误响应
//
// 映射规则：
//   - InvariantError  → 409（结构性约束被破坏 / 阶段前置数据缺失，不重试）
//   - AnalysisError   → 502（分析阶段失败，用户内容保留，可重试）
//   - GenerationError → 502（生成阶段失败，已选场景保留，可重试）
func respondError(c *gin.Context, err error) {
	var (
		invariantErr  *reel.InvariantError
		analysisErr   *reel.AnalysisError
		generationErr *reel.GenerationError
	)

	switch {
	case errors.As(err, &invariantErr):
		c.JSON(http.StatusConflict, ErrorResponse{
			Code:    40901,
			Message: "operation rejected",
			Detail:  invariantErr.Error(),
		})
	case errors.As(err, &analysisErr):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    50201,
			Message: "analysis stage failed",
			Detail:  analysisErr.Error(),
		})
	case errors.As(err, &generationErr):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    50202,
			Message: "generation stage failed",
			Detail:  generationErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: err.Error(),
		})
	}
}

// respondOK 统一成功响应
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, httputil.NewSuccessResponse("success", data))
}
