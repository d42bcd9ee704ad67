package providers

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// EinoProvider Eino 封装的 LLM 提供者（默认使用）
// 使用 ai/component 封装的 ChatModel（openai/azure/ark 均可）
// 实现了 providers.LLMProvider 接口
type EinoProvider struct {
	chatModel model.ChatModel
}

// NewEinoProvider 创建基于 Eino 的 LLM 提供者
//
// Args:
//   - chatModel: 通过 ai/component.NewChatModel 创建的 ChatModel 实例
//
// Returns:
//   - *EinoProvider: LLM 提供者实例
func NewEinoProvider(chatModel model.ChatModel) *EinoProvider {
	return &EinoProvider{
		chatModel: chatModel,
	}
}

// Generate 根据提示词生成文本（使用 eino ChatModel）
func (p *EinoProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.chatModel == nil {
		return "", fmt.Errorf("chatModel is required")
	}

	// 构建消息
	messages := []*schema.Message{
		schema.UserMessage(prompt),
	}

	return p.generate(ctx, messages)
}

// GenerateWithImage 根据提示词和内联图片生成文本
// 图片以 data URL 形式作为多模态消息的一部分传入
func (p *EinoProvider) GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if p.chatModel == nil {
		return "", fmt.Errorf("chatModel is required")
	}
	if len(image) == 0 {
		return "", fmt.Errorf("image is empty")
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	messages := []*schema.Message{
		{
			Role: schema.User,
			MultiContent: []schema.ChatMessagePart{
				{
					Type: schema.ChatMessagePartTypeImageURL,
					ImageURL: &schema.ChatMessageImageURL{
						URL:      dataURL,
						MIMEType: mimeType,
					},
				},
				{
					Type: schema.ChatMessagePartTypeText,
					Text: prompt,
				},
			},
		},
	}

	return p.generate(ctx, messages)
}

// generate 调用 ChatModel 的 Generate 方法并提取内容
func (p *EinoProvider) generate(ctx context.Context, messages []*schema.Message) (string, error) {
	response, err := p.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	// 提取内容
	content := response.Content
	if content == "" {
		return "", fmt.Errorf("empty response from chat model")
	}

	return content, nil
}
