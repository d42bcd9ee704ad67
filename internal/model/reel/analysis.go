package reel

import "fmt"

// MediaKind 分析输入的内容类型
type MediaKind string

const (
	MediaKindText  MediaKind = "text"  // 原始文本
	MediaKindImage MediaKind = "image" // 页面图片（书页、漫画分格等）
)

// Valid 判断内容类型是否受支持
func (k MediaKind) Valid() bool {
	return k == MediaKindText || k == MediaKindImage
}

// InputMethod 用户选择的输入方式（pdf/url 在输入界面可选，最终会被归一化为 text/image 分析）
type InputMethod string

const (
	InputMethodText  InputMethod = "text"
	InputMethodImage InputMethod = "image"
	InputMethodPDF   InputMethod = "pdf"
	InputMethodURL   InputMethod = "url"
)

// Valid 判断输入方式是否受支持
func (m InputMethod) Valid() bool {
	switch m {
	case InputMethodText, InputMethodImage, InputMethodPDF, InputMethodURL:
		return true
	}
	return false
}

// SceneCharacter 场景中的角色
type SceneCharacter struct {
	Name      string `json:"name"`       // 角色姓名
	Role      string `json:"role"`       // 角色定位（主角/配角等）
	Gender    string `json:"gender"`     // 性别
	KeyAction string `json:"key_action"` // 关键动作
}

// Scene 候选场景：从源内容中提取的、可转换为 Reel 的片段
// 生命周期：由分析器一次性产出，此后不可变；选择场景只复制引用，不修改源列表
type Scene struct {
	SceneID                  int              `json:"scene_id"`                   // 场景ID（结果内唯一）
	SceneTitle               string           `json:"scene_title"`                // 场景标题
	SceneText                string           `json:"scene_text"`                 // 场景原文
	SceneType                string           `json:"scene_type"`                 // 场景类型
	Characters               []SceneCharacter `json:"characters"`                 // 角色列表（可为空）
	Mood                     string           `json:"mood"`                       // 氛围
	EstimatedDurationSeconds int              `json:"estimated_duration_seconds"` // 预估时长（秒）
	HookLine                 string           `json:"hook_line"`                  // 开场钩子台词
	Reason                   string           `json:"reason,omitempty"`           // AI 推荐理由（可选）
}

// AnalysisResult 内容分析结果
// 场景顺序即推荐顺序，不是任意排列
type AnalysisResult struct {
	DetectedGenre    string  `json:"detected_genre"`    // 识别出的题材
	ContentType      string  `json:"content_type"`      // 内容类型（novel/manga/...）
	LanguageDetected string  `json:"language_detected"` // 识别出的源语言
	Scenes           []Scene `json:"scenes"`            // 候选场景（非空）
}

// Validate 校验分析结果约束：scenes 非空、scene_id 唯一、必填字段齐全
// 任何一项不满足都按失败处理，不做部分修复
func (r *AnalysisResult) Validate() error {
	if r.DetectedGenre == "" {
		return fmt.Errorf("detected_genre is required")
	}
	if r.ContentType == "" {
		return fmt.Errorf("content_type is required")
	}
	if len(r.Scenes) == 0 {
		return fmt.Errorf("scenes must not be empty")
	}

	seen := make(map[int]bool, len(r.Scenes))
	for i, s := range r.Scenes {
		if seen[s.SceneID] {
			return fmt.Errorf("duplicate scene_id %d at index %d", s.SceneID, i)
		}
		seen[s.SceneID] = true

		if s.SceneTitle == "" {
			return fmt.Errorf("scene %d: scene_title is required", s.SceneID)
		}
		if s.SceneText == "" {
			return fmt.Errorf("scene %d: scene_text is required", s.SceneID)
		}
		if s.SceneType == "" {
			return fmt.Errorf("scene %d: scene_type is required", s.SceneID)
		}
		if s.Mood == "" {
			return fmt.Errorf("scene %d: mood is required", s.SceneID)
		}
		if s.EstimatedDurationSeconds < 0 {
			return fmt.Errorf("scene %d: estimated_duration_seconds must be >= 0", s.SceneID)
		}
		if s.HookLine == "" {
			return fmt.Errorf("scene %d: hook_line is required", s.SceneID)
		}
	}

	return nil
}

// FindScene 按 scene_id 查找场景，返回场景副本
func (r *AnalysisResult) FindScene(sceneID int) (Scene, bool) {
	for _, s := range r.Scenes {
		if s.SceneID == sceneID {
			return s, true
		}
	}
	return Scene{}, false
}
