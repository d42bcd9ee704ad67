package reel

import (
	"fmt"
	"time"
)

// Shot 剧本中的单个镜头，是编辑操作的原子单位
// 所有权：一个 Shot 只属于一个 Screenplay，镜头从不跨剧本共享
type Shot struct {
	ShotNumber  int     `json:"shot_number"`            // 镜头编号（从1开始，连续）
	Duration    string  `json:"duration"`               // 时长标签（如 "4s"）
	Visual      string  `json:"visual"`                 // 画面描述（视频 prompt 的种子）
	Camera      string  `json:"camera"`                 // 运镜/构图描述
	Character   string  `json:"character"`              // 镜头中的角色
	Action      string  `json:"action"`                 // 角色动作
	Dialogue    *string `json:"dialogue"`               // 台词（null 表示无台词）
	MusicMood   string  `json:"music_mood"`             // 音乐情绪
	VideoPrompt string  `json:"video_prompt,omitempty"` // 视频生成提示词（可选）
}

// Screenplay 生成/可编辑的剧本工件
// 核心结构约束：shots 非空，且 shots[i].shot_number == i+1 在任何可观测时刻都成立
type Screenplay struct {
	Title            string   `json:"title"`             // 标题
	Duration         string   `json:"duration"`          // 时长标签（15s/30s/45s/60s）
	Genre            string   `json:"genre"`             // 题材
	Style            string   `json:"style"`             // 影视风格
	AudioLanguage    string   `json:"audio_language"`    // 配音语言
	SubtitleLanguage string   `json:"subtitle_language"` // 字幕语言（"None" 表示无字幕）
	Shots            []Shot   `json:"shots"`             // 镜头列表（非空、连续编号）
	Caption          string   `json:"caption"`           // 发布文案
	Hashtags         []string `json:"hashtags"`          // 话题标签
}

// Validate 校验剧本结构约束：shots 非空且编号为连续的 1..N
//
// 这是编辑保存 / 状态机装载时的守卫。自由文本字段（标题、文案等）
// 在编辑后允许为任意字符串（包括空串），不在结构约束之列；
// 字段级的严格校验只发生在生成边界，见 ValidateSchema
func (sp *Screenplay) Validate() error {
	if len(sp.Shots) == 0 {
		return fmt.Errorf("shots must not be empty")
	}

	for i, shot := range sp.Shots {
		if shot.ShotNumber != i+1 {
			return fmt.Errorf("shot at index %d has shot_number %d, want %d", i, shot.ShotNumber, i+1)
		}
	}

	return nil
}

// ValidateSchema 按模型输出 schema 严格校验剧本：结构约束 + 全部必填字段
// 任何必填字段缺失都按违约处理，不做部分修复
func (sp *Screenplay) ValidateSchema() error {
	if sp.Title == "" {
		return fmt.Errorf("title is required")
	}
	if sp.Duration == "" {
		return fmt.Errorf("duration is required")
	}
	if sp.Genre == "" {
		return fmt.Errorf("genre is required")
	}
	if sp.Style == "" {
		return fmt.Errorf("style is required")
	}
	if sp.AudioLanguage == "" {
		return fmt.Errorf("audio_language is required")
	}
	if sp.Caption == "" {
		return fmt.Errorf("caption is required")
	}
	if len(sp.Hashtags) == 0 {
		return fmt.Errorf("hashtags must not be empty")
	}

	if err := sp.Validate(); err != nil {
		return err
	}

	for _, shot := range sp.Shots {
		if shot.Duration == "" {
			return fmt.Errorf("shot %d: duration is required", shot.ShotNumber)
		}
		if shot.Visual == "" {
			return fmt.Errorf("shot %d: visual is required", shot.ShotNumber)
		}
		if shot.Camera == "" {
			return fmt.Errorf("shot %d: camera is required", shot.ShotNumber)
		}
		if shot.Character == "" {
			return fmt.Errorf("shot %d: character is required", shot.ShotNumber)
		}
		if shot.Action == "" {
			return fmt.Errorf("shot %d: action is required", shot.ShotNumber)
		}
		if shot.MusicMood == "" {
			return fmt.Errorf("shot %d: music_mood is required", shot.ShotNumber)
		}
	}

	return nil
}

// Clone 深拷贝剧本（镜头、台词指针、标签全部复制）
// 编辑器在会话开始时取副本操作，取消编辑时源剧本不受影响
func (sp *Screenplay) Clone() *Screenplay {
	cp := *sp

	cp.Shots = make([]Shot, len(sp.Shots))
	for i, shot := range sp.Shots {
		cp.Shots[i] = shot
		if shot.Dialogue != nil {
			d := *shot.Dialogue
			cp.Shots[i].Dialogue = &d
		}
	}

	cp.Hashtags = make([]string, len(sp.Hashtags))
	copy(cp.Hashtags, sp.Hashtags)

	return &cp
}

// PostedReel 已发布的 Reel（模拟发布产物，进入会话内 Feed）
type PostedReel struct {
	ID         string      `json:"id"`         // Reel ID（UUID）
	Screenplay *Screenplay `json:"screenplay"` // 定稿剧本
	Platforms  []string    `json:"platforms"`  // 发布平台（tiktok/instagram/youtube）
	PostedAt   time.Time   `json:"posted_at"`  // 发布时间
	Views      string      `json:"views"`      // 展示用播放量
}
