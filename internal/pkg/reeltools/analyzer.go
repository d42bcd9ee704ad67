package reeltools

import (
	"context"
	"encoding/json"
	"strings"

	"bookreel/internal/model/reel"
	"bookreel/internal/pkg/reeltools/providers"
)

// defaultImageMIME 图片输入未声明 MIME 类型时的默认值
const defaultImageMIME = "image/jpeg"

// Analyzer 内容分析器：把原始文本或页面图片交给大模型，提取候选场景
//
// 设计原则：
//   - 不负责落库 / 不依赖 HTTP，只负责组装 prompt 并调用上层注入的 LLM 提供者
//   - 单次调用，不在内部重试；失败时调用方状态不受影响，可自行决定重试策略
//   - 输出严格按 AnalysisResult schema 校验，不做部分修复
type Analyzer struct {
	llmProvider providers.LLMProvider // 调用大模型的提供者（由上层注入，便于在不同环境下切换实现）
	imageMIME   string                // 图片输入的 MIME 类型
}

// NewAnalyzer 创建内容分析器实例
func NewAnalyzer(llmProvider providers.LLMProvider) *Analyzer {
	return &Analyzer{
		llmProvider: llmProvider,
		imageMIME:   defaultImageMIME,
	}
}

// Analyze 分析内容并提取候选场景
//
// Args:
//   - ctx: 上下文
//   - content: 原始文本字节或图片原始字节（二选一，由 kind 决定）
//   - kind: 内容类型（text/image）
//
// Returns:
//   - result: 通过校验的分析结果
//   - err: *reel.AnalysisError（调用失败或输出不符合 schema）
func (a *Analyzer) Analyze(ctx context.Context, content []byte, kind reel.MediaKind) (*reel.AnalysisResult, error) {
	if a.llmProvider == nil {
		return nil, reel.NewAnalysisError("llmProvider is required", nil)
	}
	if !kind.Valid() {
		return nil, reel.NewAnalysisError("unsupported media kind: "+string(kind), nil)
	}
	if len(content) == 0 {
		return nil, reel.NewAnalysisError("content is empty", nil)
	}

	var (
		raw string
		err error
	)
	switch kind {
	case reel.MediaKindImage:
		// 图片走多模态消息，指令与图片一起传入
		raw, err = a.llmProvider.GenerateWithImage(ctx, buildAnalysisPrompt(kind, ""), content, a.imageMIME)
	default:
		raw, err = a.llmProvider.Generate(ctx, buildAnalysisPrompt(kind, string(content)))
	}
	if err != nil {
		return nil, reel.NewAnalysisError("model call failed", err)
	}

	return parseAnalysisResult(raw)
}

// parseAnalysisResult 解析并校验模型输出
// 解析失败或校验不通过均按失败处理，不做部分修复
func parseAnalysisResult(raw string) (*reel.AnalysisResult, error) {
	cleaned := CleanJSONContent(raw)
	if cleaned == "" {
		return nil, reel.NewAnalysisError("empty response", nil)
	}

	var result reel.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, reel.NewAnalysisError("response is not valid JSON", err)
	}

	if err := result.Validate(); err != nil {
		return nil, reel.NewAnalysisError("response violates analysis schema", err)
	}

	return &result, nil
}

// buildAnalysisPrompt 构造内容分析提示词
// 文本输入时原文内联在提示词里；图片输入时 content 参数为空，图片随消息传入
func buildAnalysisPrompt(kind reel.MediaKind, content string) string {
	var b strings.Builder

	b.WriteString("You are a content analyzer for BooksToReel.\n")
	b.WriteString("1. Identify the genre (Romance, Action, Manga, Horror, etc.)\n")
	b.WriteString("2. Extract ALL convertible scenes suitable for a 30-60s video reel.\n")
	b.WriteString("3. For images/manga, describe visual actions clearly.\n\n")

	b.WriteString("Your output MUST be a single valid JSON object, nothing else.\n")
	b.WriteString("Do not wrap the JSON in markdown code fences and do not add commentary.\n")
	b.WriteString("Schema:\n")
	b.WriteString(`{
  "detected_genre": string,
  "content_type": string,
  "language_detected": string,
  "scenes": [
    {
      "scene_id": integer,
      "scene_title": string,
      "scene_text": string,
      "scene_type": string,
      "characters": [{"name": string, "role": string, "gender": string, "key_action": string}],
      "mood": string,
      "estimated_duration_seconds": integer,
      "hook_line": string,
      "reason": string
    }
  ]
}`)
	b.WriteString("\nAll fields except \"reason\" are required. ")
	b.WriteString("scene_id must be unique within the result and scenes must be ordered by recommendation strength.\n")

	switch kind {
	case reel.MediaKindImage:
		b.WriteString("\nAnalyze this image (book page, manga panel, etc). Extract text and convertible scenes.\n")
	default:
		b.WriteString("\nAnalyze this text content and extract convertible scenes.\n\nCONTENT:\n")
		b.WriteString(content)
		b.WriteString("\n")
	}

	return b.String()
}
