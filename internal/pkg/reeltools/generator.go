package reeltools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bookreel/internal/model/reel"
	"bookreel/internal/pkg/reeltools/providers"
)

// Generator 剧本生成器：把选中的场景和生成配置交给大模型，产出分镜头剧本
//
// 设计原则：
//   - 单次调用，不在内部重试
//   - 输出严格按 Screenplay schema 校验，包括镜头编号必须已经是连续的 1..N；
//     生成器从不代替模型重新编号——重新编号是编辑器的特权，
//     生成器无从得知模型叙事的真实意图顺序
type Generator struct {
	llmProvider providers.LLMProvider
}

// NewGenerator 创建剧本生成器实例
func NewGenerator(llmProvider providers.LLMProvider) *Generator {
	return &Generator{
		llmProvider: llmProvider,
	}
}

// Generate 根据场景和配置生成剧本
//
// Args:
//   - ctx: 上下文
//   - scene: 选中的场景（来自分析结果，只读）
//   - cfg: 生成配置（已通过 Validate）
//
// Returns:
//   - screenplay: 通过校验的剧本
//   - err: *reel.GenerationError（调用失败或输出违反约定）
func (g *Generator) Generate(ctx context.Context, scene reel.Scene, cfg reel.GenerationConfig) (*reel.Screenplay, error) {
	if g.llmProvider == nil {
		return nil, reel.NewGenerationError("llmProvider is required", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, reel.NewGenerationError("invalid generation config", err)
	}

	prompt, err := buildScreenplayPrompt(scene, cfg)
	if err != nil {
		return nil, reel.NewGenerationError("failed to build prompt", err)
	}

	raw, err := g.llmProvider.Generate(ctx, prompt)
	if err != nil {
		return nil, reel.NewGenerationError("model call failed", err)
	}

	return parseScreenplay(raw, cfg)
}

// parseScreenplay 解析并校验模型输出的剧本
// 除 schema 校验外，还检查模型回显的语言约束：
//   - audio_language 必须与请求一致（翻译规则的事后校验）
//   - subtitle_language 请求为 "None" 时必须原样保留哨兵值
func parseScreenplay(raw string, cfg reel.GenerationConfig) (*reel.Screenplay, error) {
	cleaned := CleanJSONContent(raw)
	if cleaned == "" {
		return nil, reel.NewGenerationError("empty response", nil)
	}

	var sp reel.Screenplay
	if err := json.Unmarshal([]byte(cleaned), &sp); err != nil {
		return nil, reel.NewGenerationError("response is not valid JSON", err)
	}

	if err := sp.ValidateSchema(); err != nil {
		return nil, reel.NewGenerationError("response violates screenplay schema", err)
	}

	if sp.AudioLanguage != cfg.AudioLanguage {
		return nil, reel.NewGenerationError(
			fmt.Sprintf("audio_language mismatch: requested %q, got %q", cfg.AudioLanguage, sp.AudioLanguage), nil)
	}
	if cfg.SubtitleLanguage == reel.SubtitleNone && sp.SubtitleLanguage != reel.SubtitleNone {
		return nil, reel.NewGenerationError(
			fmt.Sprintf("subtitle_language sentinel lost: got %q", sp.SubtitleLanguage), nil)
	}

	return &sp, nil
}

// buildScreenplayPrompt 构造剧本生成提示词
// 场景以 JSON 内联提供叙事上下文，配置作为硬约束逐项列出
func buildScreenplayPrompt(scene reel.Scene, cfg reel.GenerationConfig) (string, error) {
	sceneJSON, err := json.Marshal(scene)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a director creating a %s Reel.\n\n", cfg.Duration)

	b.WriteString("INPUT:\n")
	fmt.Fprintf(&b, "- Scene: %s\n", sceneJSON)
	fmt.Fprintf(&b, "- Style: %s\n", cfg.Style)
	fmt.Fprintf(&b, "- Leads: %s, %s\n", cfg.LeadActor, cfg.LeadActress)
	if cfg.Supporting != "" {
		fmt.Fprintf(&b, "- Supporting: %s\n", cfg.Supporting)
	}
	fmt.Fprintf(&b, "- Audio Lang: %s\n", cfg.AudioLanguage)
	fmt.Fprintf(&b, "- Subtitle Lang: %s\n", cfg.SubtitleLanguage)
	fmt.Fprintf(&b, "- Music: %s\n\n", cfg.MusicMood)

	b.WriteString("Construct a shot-by-shot breakdown.\n")
	b.WriteString("If Audio Lang differs from the scene's source language, translate all dialogue into the Audio Lang ")
	b.WriteString("and echo the Audio Lang back in audio_language.\n")
	b.WriteString("If Subtitle Lang is 'None', keep subtitle_language exactly 'None' and do not reference subtitles in visuals.\n\n")

	b.WriteString("Your output MUST be a single valid JSON object, nothing else.\n")
	b.WriteString("Do not wrap the JSON in markdown code fences and do not add commentary.\n")
	b.WriteString("Schema:\n")
	b.WriteString(`{
  "title": string,
  "duration": string,
  "genre": string,
  "style": string,
  "audio_language": string,
  "subtitle_language": string,
  "shots": [
    {
      "shot_number": integer,
      "duration": string,
      "visual": string,
      "camera": string,
      "character": string,
      "action": string,
      "dialogue": string or null,
      "music_mood": string
    }
  ],
  "caption": string,
  "hashtags": [string]
}`)
	b.WriteString("\nshot_number must start at 1 and increase by exactly 1 per shot, with no gaps.\n")

	return b.String(), nil
}

// BuildFramePrompt 为单个镜头构造画面生成提示词（竖屏 Reel 画幅）
func BuildFramePrompt(shot reel.Shot, style string) string {
	return fmt.Sprintf("Cinematic %s, %s, 9:16 aspect ratio", style, shot.Visual)
}
