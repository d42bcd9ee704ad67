// Package pipeline 实现 Reel 创作流水线的状态机
//
// 状态机拥有当前阶段标签和各阶段产出的数据槽位，并负责阶段间的合法迁移：
// 前置数据缺失的迁移一律拒绝（快速失败），数据严格向前流动，
// 任何组件都不得越过状态机直接改写上游产出
package pipeline

import (
	"sync"

	"bookreel/internal/model/reel"
)

// Stage 流水线阶段标签
type Stage string

const (
	StageHome           Stage = "home"            // 首页
	StageInput          Stage = "input"           // 内容输入
	StageSceneSelection Stage = "scene_selection" // 场景选择
	StageCustomize      Stage = "customize"       // 生成配置
	StageGenerating     Stage = "generating"      // 生成中（忙阶段，不暴露可发起第二次调用的操作）
	StagePreview        Stage = "preview"         // 剧本预览
	StageEditor         Stage = "editor"          // 剧本编辑
	StagePost           Stage = "post"            // 定稿发布
	StageFeed           Stage = "feed"            // Feed（仅从首页可达，不属于创作链）
)

// String 返回阶段的字符串表示
func (s Stage) String() string {
	return string(s)
}

// 生成阶段的固定进度检查点（单调递增，最后一个检查点不可跳过）
const (
	ProgressStart      = 0
	ProgressScreenplay = 20  // 剧本写作开始
	ProgressVisuals    = 50  // 画面合成（模拟）
	ProgressAudio      = 80  // 音频合成（模拟）
	ProgressDone       = 100 // 完成
)

// Pipeline 会话级流水线状态机实例
// 同一时刻最多持有一份分析结果、一个选中场景、一份剧本；回到首页时全部清空
// 内部用互斥锁保护，HTTP 层可以并发访问；所有迁移方法遵循
// (当前状态, 新数据, 动作) → 新状态 的纯函数语义，失败时状态保持不变
type Pipeline struct {
	mu sync.Mutex

	stage       Stage
	inputMethod reel.InputMethod

	analyzing bool // 外部分析调用在途标记（input 阶段内的忙标记）

	analysis      *reel.AnalysisResult
	selectedScene *reel.Scene
	screenplay    *reel.Screenplay
	pendingConfig *reel.GenerationConfig

	progress int    // 生成进度 0..100
	step     string // 当前生成子步骤描述
}

// New 创建处于首页阶段的空流水线
func New() *Pipeline {
	return &Pipeline{stage: StageHome}
}

// Stage 返回当前阶段
func (p *Pipeline) Stage() Stage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stage
}

// SelectInputMethod 从首页进入内容输入阶段
func (p *Pipeline) SelectInputMethod(method reel.InputMethod) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageHome {
		return reel.NewInvariantError("selectInputMethod", "only allowed from home, current stage: "+p.stage.String())
	}
	if !method.Valid() {
		return reel.NewInvariantError("selectInputMethod", "unsupported input method: "+string(method))
	}

	p.inputMethod = method
	p.stage = StageInput
	return nil
}

// BeginAnalysis 标记外部分析调用开始
// 只允许在 input 阶段发起，且同一会话不允许有第二个在途调用
func (p *Pipeline) BeginAnalysis() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageInput {
		return reel.NewInvariantError("analyze", "only allowed from input, current stage: "+p.stage.String())
	}
	if p.analyzing {
		return reel.NewInvariantError("analyze", "an analysis call is already in flight")
	}

	p.analyzing = true
	return nil
}

// CompleteAnalysis 分析成功，装入结果并进入场景选择阶段
func (p *Pipeline) CompleteAnalysis(result *reel.AnalysisResult) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageInput || !p.analyzing {
		return reel.NewInvariantError("completeAnalysis", "no analysis in flight")
	}
	if result == nil {
		return reel.NewInvariantError("completeAnalysis", "analysis result is nil")
	}
	if err := result.Validate(); err != nil {
		return reel.NewInvariantError("completeAnalysis", err.Error())
	}

	p.analysis = result
	p.analyzing = false
	p.stage = StageSceneSelection
	return nil
}

// FailAnalysis 分析失败，停留在 input 阶段，已有状态不变，用户可重试
func (p *Pipeline) FailAnalysis() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.analyzing = false
}

// SelectScene 选择候选场景并进入配置阶段
// 场景必须属于当前持有的分析结果；选择仅复制场景值，不修改源列表
func (p *Pipeline) SelectScene(sceneID int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageSceneSelection {
		return reel.NewInvariantError("selectScene", "only allowed from scene_selection, current stage: "+p.stage.String())
	}
	if p.analysis == nil {
		return reel.NewInvariantError("selectScene", "no analysis result held")
	}

	scene, ok := p.analysis.FindScene(sceneID)
	if !ok {
		return reel.NewInvariantError("selectScene", "scene is not a member of the held analysis result")
	}

	p.selectedScene = &scene
	p.stage = StageCustomize
	return nil
}

// RequestGenerate 校验配置并进入生成阶段
func (p *Pipeline) RequestGenerate(cfg reel.GenerationConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageCustomize {
		return reel.NewInvariantError("requestGenerate", "only allowed from customize, current stage: "+p.stage.String())
	}
	if p.selectedScene == nil {
		return reel.NewInvariantError("requestGenerate", "no scene selected")
	}
	if err := cfg.Validate(); err != nil {
		return reel.NewInvariantError("requestGenerate", err.Error())
	}

	p.pendingConfig = &cfg
	p.progress = ProgressStart
	p.step = ""
	p.stage = StageGenerating
	return nil
}

// SetProgress 更新生成进度（只允许在生成阶段调用，且进度不回退）
func (p *Pipeline) SetProgress(progress int, step string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageGenerating {
		return reel.NewInvariantError("setProgress", "only allowed while generating, current stage: "+p.stage.String())
	}
	if progress < p.progress {
		return reel.NewInvariantError("setProgress", "progress must not regress")
	}
	if progress > ProgressDone {
		return reel.NewInvariantError("setProgress", "progress must not exceed 100")
	}

	p.progress = progress
	p.step = step
	return nil
}

// CompleteGeneration 生成成功，装入剧本、补齐最终进度检查点并进入预览阶段
func (p *Pipeline) CompleteGeneration(sp *reel.Screenplay) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageGenerating {
		return reel.NewInvariantError("completeGeneration", "only allowed while generating, current stage: "+p.stage.String())
	}
	if sp == nil {
		return reel.NewInvariantError("completeGeneration", "screenplay is nil")
	}
	if err := sp.Validate(); err != nil {
		return reel.NewInvariantError("completeGeneration", err.Error())
	}

	p.screenplay = sp
	p.pendingConfig = nil
	p.progress = ProgressDone
	p.stage = StagePreview
	return nil
}

// FailGeneration 生成失败，回到配置阶段
// 已选场景保留，配置丢弃（需重新提交），剧本槽位不变
func (p *Pipeline) FailGeneration() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageGenerating {
		return reel.NewInvariantError("failGeneration", "only allowed while generating, current stage: "+p.stage.String())
	}

	p.pendingConfig = nil
	p.progress = ProgressStart
	p.step = ""
	p.stage = StageCustomize
	return nil
}

// Approve 预览确认，进入发布阶段
func (p *Pipeline) Approve() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StagePreview {
		return reel.NewInvariantError("approve", "only allowed from preview, current stage: "+p.stage.String())
	}
	if p.screenplay == nil {
		return reel.NewInvariantError("approve", "no screenplay held")
	}

	p.stage = StagePost
	return nil
}

// Edit 从预览进入编辑阶段
func (p *Pipeline) Edit() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StagePreview {
		return reel.NewInvariantError("edit", "only allowed from preview, current stage: "+p.stage.String())
	}
	if p.screenplay == nil {
		return reel.NewInvariantError("edit", "no screenplay held")
	}

	p.stage = StageEditor
	return nil
}

// SaveEdits 保存编辑结果：校验后整体替换剧本并回到预览
func (p *Pipeline) SaveEdits(sp *reel.Screenplay) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageEditor {
		return reel.NewInvariantError("saveEdits", "only allowed from editor, current stage: "+p.stage.String())
	}
	if sp == nil {
		return reel.NewInvariantError("saveEdits", "edited screenplay is nil")
	}
	if err := sp.Validate(); err != nil {
		return reel.NewInvariantError("saveEdits", err.Error())
	}

	p.screenplay = sp
	p.stage = StagePreview
	return nil
}

// CancelEdits 放弃编辑，剧本不变，回到预览
func (p *Pipeline) CancelEdits() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageEditor {
		return reel.NewInvariantError("cancelEdits", "only allowed from editor, current stage: "+p.stage.String())
	}

	p.stage = StagePreview
	return nil
}

// OpenFeed 从首页进入 Feed
func (p *Pipeline) OpenFeed() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stage != StageHome {
		return reel.NewInvariantError("openFeed", "only allowed from home, current stage: "+p.stage.String())
	}

	p.stage = StageFeed
	return nil
}

// Back 返回上一界面（输入→首页为整体重置；其余仅回退界面，槽位保留）
func (p *Pipeline) Back() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.stage {
	case StageInput, StageFeed:
		p.reset()
	case StageSceneSelection:
		p.stage = StageInput
	case StageCustomize:
		p.stage = StageSceneSelection
	default:
		return reel.NewInvariantError("back", "no back navigation from stage: "+p.stage.String())
	}
	return nil
}

// GoHome 从任意阶段回到首页，清空全部数据槽位
func (p *Pipeline) GoHome() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reset()
}

// reset 清空所有槽位并回到首页（调用方必须持有锁）
func (p *Pipeline) reset() {
	p.stage = StageHome
	p.inputMethod = ""
	p.analyzing = false
	p.analysis = nil
	p.selectedScene = nil
	p.screenplay = nil
	p.pendingConfig = nil
	p.progress = ProgressStart
	p.step = ""
}

// Analysis 返回当前持有的分析结果（可能为 nil）
func (p *Pipeline) Analysis() *reel.AnalysisResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.analysis
}

// SelectedScene 返回当前选中的场景
func (p *Pipeline) SelectedScene() (reel.Scene, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.selectedScene == nil {
		return reel.Scene{}, false
	}
	return *p.selectedScene, true
}

// PendingConfig 返回生成阶段在用的配置
func (p *Pipeline) PendingConfig() (reel.GenerationConfig, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pendingConfig == nil {
		return reel.GenerationConfig{}, false
	}
	return *p.pendingConfig, true
}

// Screenplay 返回当前持有的剧本（可能为 nil）
// 返回的是权威指针，修改必须通过 SaveEdits 完成
func (p *Pipeline) Screenplay() *reel.Screenplay {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.screenplay
}

// Progress 返回生成进度和当前子步骤描述
func (p *Pipeline) Progress() (int, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress, p.step
}

// Snapshot 流水线状态快照（供查询接口使用）
type Snapshot struct {
	Stage         Stage                `json:"stage"`
	InputMethod   reel.InputMethod     `json:"input_method,omitempty"`
	Analysis      *reel.AnalysisResult `json:"analysis,omitempty"`
	SelectedScene *reel.Scene          `json:"selected_scene,omitempty"`
	Screenplay    *reel.Screenplay     `json:"screenplay,omitempty"`
	Progress      int                  `json:"progress"`
	Step          string               `json:"step,omitempty"`
}

// Snapshot 返回当前状态的一致性快照
func (p *Pipeline) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Snapshot{
		Stage:         p.stage,
		InputMethod:   p.inputMethod,
		Analysis:      p.analysis,
		SelectedScene: p.selectedScene,
		Screenplay:    p.screenplay,
		Progress:      p.progress,
		Step:          p.step,
	}
}
