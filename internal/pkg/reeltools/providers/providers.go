package providers

import "context"

// LLMProvider 定义了调用大模型的接口
// 具体的「如何调用大模型」由调用方通过实现此接口注入，方便单测和替换实现
type LLMProvider interface {
	// Generate 根据提示词生成文本
	//
	// Args:
	//   - ctx: 上下文
	//   - prompt: 提示词
	//
	// Returns:
	//   - text: 生成的文本
	//   - err: 错误信息
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateWithImage 根据提示词和内联图片生成文本（多模态）
	//
	// Args:
	//   - ctx: 上下文
	//   - prompt: 提示词
	//   - image: 图片原始字节
	//   - mimeType: 图片 MIME 类型（如 image/jpeg）
	//
	// Returns:
	//   - text: 生成的文本
	//   - err: 错误信息
	GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}
