package reel

import "fmt"

// GenerationConfig 剧本生成配置，由用户在 Customize 阶段选择
// 每次生成请求重新构造，不跨 Reel 复用
type GenerationConfig struct {
	Style            string `json:"style"`             // 影视风格（Styles 之一）
	LeadActor        string `json:"lead_actor"`        // 男主演员
	LeadActress      string `json:"lead_actress"`      // 女主演员
	Supporting       string `json:"supporting"`        // 配角（可选）
	AudioLanguage    string `json:"audio_language"`    // 配音语言（Languages 之一）
	SubtitleLanguage string `json:"subtitle_language"` // 字幕语言（Languages 之一或 "None"）
	MusicMood        string `json:"music_mood"`        // 音乐情绪（MusicMoods ID 之一）
	Duration         string `json:"duration"`          // Reel 时长（Durations 之一）
}

// Validate 按选项目录校验配置
func (c *GenerationConfig) Validate() error {
	if !ValidStyle(c.Style) {
		return fmt.Errorf("unsupported style: %q", c.Style)
	}
	if c.LeadActor == "" {
		return fmt.Errorf("lead_actor is required")
	}
	if c.LeadActress == "" {
		return fmt.Errorf("lead_actress is required")
	}
	if !ValidLanguage(c.AudioLanguage) {
		return fmt.Errorf("unsupported audio_language: %q", c.AudioLanguage)
	}
	if c.SubtitleLanguage != SubtitleNone && !ValidLanguage(c.SubtitleLanguage) {
		return fmt.Errorf("unsupported subtitle_language: %q", c.SubtitleLanguage)
	}
	if !ValidMusicMood(c.MusicMood) {
		return fmt.Errorf("unsupported music_mood: %q", c.MusicMood)
	}
	if !ValidDuration(c.Duration) {
		return fmt.Errorf("unsupported duration: %q", c.Duration)
	}
	return nil
}
