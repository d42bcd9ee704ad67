package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey context 中请求ID的键
const RequestIDKey = "request_id"

// RequestID 请求ID中间件
// 优先透传 X-Request-ID header，缺失时生成新的 UUID，并回写到响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set(RequestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)

		c.Next()
	}
}
