// Package reel Reel 创作流水线的 HTTP 处理器
// 一个操作一个文件，统一走 ReelService，处理器本身不持有任何流水线状态
package reel

import (
	"time"

	"bookreel/internal/service"
)

// Handler Reel 流水线处理器
type Handler struct {
	svc         *service.ReelService
	postLatency time.Duration // 模拟发布平台耗时
}

// NewHandler 创建 Reel 流水线处理器
func NewHandler(svc *service.ReelService, postLatency time.Duration) *Handler {
	return &Handler{
		svc:         svc,
		postLatency: postLatency,
	}
}
