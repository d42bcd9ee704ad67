package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"bookreel/internal/editor"
	"bookreel/internal/model/reel"
	"bookreel/internal/pipeline"
	"bookreel/internal/pkg/id"
)

// ContentAnalyzer 内容分析边界接口（唯一真正的 I/O 不确定点之一，便于单测注入）
type ContentAnalyzer interface {
	Analyze(ctx context.Context, content []byte, kind reel.MediaKind) (*reel.AnalysisResult, error)
}

// ScreenplayGenerator 剧本生成边界接口
type ScreenplayGenerator interface {
	Generate(ctx context.Context, scene reel.Scene, cfg reel.GenerationConfig) (*reel.Screenplay, error)
}

// RenderStep 生成阶段的异步子步骤处理器（画面合成、音频合成）
// 默认实现是固定延迟的占位，真实渲染管线可以替换实现而不触碰状态机的迁移逻辑
type RenderStep func(ctx context.Context) error

// FeedItem Feed 中的一条 Reel 摘要
type FeedItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Views    string `json:"views"`
	PostedAt string `json:"posted_at,omitempty"` // 会话内发布的才有
}

// feedSeed Feed 的演示数据（会话内发布的 Reel 追加在其后）
var feedSeed = []FeedItem{
	{ID: "1", Title: "The Silent Goodbye", Views: "45K"},
	{ID: "2", Title: "Midnight Rain", Views: "12K"},
	{ID: "3", Title: "Solo Leveling Ep.1", Views: "89K"},
}

// postPlatforms 支持的发布平台
var postPlatforms = map[string]bool{
	"tiktok":    true,
	"instagram": true,
	"youtube":   true,
}

// ReelService Reel 创作服务：把分析器、生成器、渲染子步骤和状态机装配成完整流水线
// 单会话：一次只创作一个 Reel，状态由内部的 pipeline 实例独占持有
type ReelService struct {
	pipe      *pipeline.Pipeline
	analyzer  ContentAnalyzer
	generator ScreenplayGenerator

	visualStep RenderStep // 画面合成子步骤（进度 50）
	audioStep  RenderStep // 音频合成子步骤（进度 80）

	mu      sync.Mutex
	session *editor.Session   // 当前编辑会话（editor 阶段持有）
	posted  []reel.PostedReel // 会话内已发布的 Reel
}

// Option ReelService 可选配置
type Option func(*ReelService)

// WithRenderSteps 替换模拟渲染子步骤（用于接入真实渲染或在测试中消除延迟）
func WithRenderSteps(visual, audio RenderStep) Option {
	return func(s *ReelService) {
		s.visualStep = visual
		s.audioStep = audio
	}
}

// NewReelService 创建 Reel 创作服务
//
// Args:
//   - analyzer: 内容分析器
//   - generator: 剧本生成器
//   - stepLatency: 模拟渲染子步骤的固定延迟
func NewReelService(analyzer ContentAnalyzer, generator ScreenplayGenerator, stepLatency time.Duration, opts ...Option) *ReelService {
	s := &ReelService{
		pipe:       pipeline.New(),
		analyzer:   analyzer,
		generator:  generator,
		visualStep: simulatedStep(stepLatency),
		audioStep:  simulatedStep(stepLatency),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// simulatedStep 固定延迟的渲染占位步骤
func simulatedStep(latency time.Duration) RenderStep {
	return func(ctx context.Context) error {
		if latency <= 0 {
			return nil
		}
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

// Snapshot 返回流水线状态快照；编辑阶段时附带当前草稿
func (s *ReelService) Snapshot() pipeline.Snapshot {
	snap := s.pipe.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Stage == pipeline.StageEditor && s.session != nil {
		snap.Screenplay = s.session.Draft()
	}
	return snap
}

// SelectInputMethod 选择输入方式并进入输入阶段
func (s *ReelService) SelectInputMethod(method reel.InputMethod) error {
	return s.pipe.SelectInputMethod(method)
}

// Analyze 分析输入内容
// 失败时状态机停留在 input 阶段且已有数据不变，调用方可直接重试
func (s *ReelService) Analyze(ctx context.Context, content []byte, kind reel.MediaKind) error {
	if len(content) == 0 {
		return reel.NewInvariantError("analyze", "content is empty for the active input kind")
	}

	if err := s.pipe.BeginAnalysis(); err != nil {
		return err
	}

	result, err := s.analyzer.Analyze(ctx, content, kind)
	if err != nil {
		s.pipe.FailAnalysis()
		log.Warn().Err(err).Str("media_kind", string(kind)).Msg("content analysis failed")
		return err
	}

	if err := s.pipe.CompleteAnalysis(result); err != nil {
		s.pipe.FailAnalysis()
		return err
	}

	log.Info().
		Str("genre", result.DetectedGenre).
		Int("scenes", len(result.Scenes)).
		Msg("content analysis completed")
	return nil
}

// SelectScene 选择候选场景
func (s *ReelService) SelectScene(sceneID int) error {
	return s.pipe.SelectScene(sceneID)
}

// Generate 生成剧本并走完渲染子步骤序列
//
// 进度检查点固定为 20（剧本写作）→ 50（画面合成）→ 80（音频合成）→ 100，
// 严格顺序执行：剧本生成完成后才开始模拟的画面/音频步骤。
// 任一环节失败都回到 customize 阶段，已选场景保留，配置丢弃
func (s *ReelService) Generate(ctx context.Context, cfg reel.GenerationConfig) error {
	if err := s.pipe.RequestGenerate(cfg); err != nil {
		return err
	}

	scene, ok := s.pipe.SelectedScene()
	if !ok {
		// RequestGenerate 已经保证了场景存在
		_ = s.pipe.FailGeneration()
		return reel.NewInvariantError("generate", "no scene selected")
	}

	fail := func(err error) error {
		_ = s.pipe.FailGeneration()
		log.Warn().Err(err).Msg("screenplay generation failed")
		return err
	}

	if err := s.pipe.SetProgress(pipeline.ProgressScreenplay, "Writing multi-lingual screenplay..."); err != nil {
		return fail(err)
	}

	sp, err := s.generator.Generate(ctx, scene, cfg)
	if err != nil {
		return fail(err)
	}

	if err := s.pipe.SetProgress(pipeline.ProgressVisuals, "Generating visuals (Simulated)..."); err != nil {
		return fail(err)
	}
	if err := s.visualStep(ctx); err != nil {
		return fail(reel.NewGenerationError("visual synthesis step failed", err))
	}

	if err := s.pipe.SetProgress(pipeline.ProgressAudio, fmt.Sprintf("Adding %s audio...", cfg.AudioLanguage)); err != nil {
		return fail(err)
	}
	if err := s.audioStep(ctx); err != nil {
		return fail(reel.NewGenerationError("audio synthesis step failed", err))
	}

	if err := s.pipe.CompleteGeneration(sp); err != nil {
		return fail(err)
	}

	log.Info().
		Str("title", sp.Title).
		Int("shots", len(sp.Shots)).
		Str("audio_language", sp.AudioLanguage).
		Msg("screenplay generated")
	return nil
}

// Approve 预览确认，进入发布阶段
func (s *ReelService) Approve() error {
	return s.pipe.Approve()
}

// Edit 进入编辑阶段并开启编辑会话（对剧本做深拷贝）
func (s *ReelService) Edit() error {
	if err := s.pipe.Edit(); err != nil {
		return err
	}

	sess, err := editor.NewSession(s.pipe.Screenplay())
	if err != nil {
		// 剧本存在性已由 Edit 迁移保证
		_ = s.pipe.CancelEdits()
		return err
	}

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
	return nil
}

// editSession 取当前编辑会话
func (s *ReelService) editSession() (*editor.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, reel.NewInvariantError("edit", "no edit session in progress")
	}
	return s.session, nil
}

// EditTitle 修改草稿标题
func (s *ReelService) EditTitle(title string) error {
	sess, err := s.editSession()
	if err != nil {
		return err
	}
	sess.SetTitle(title)
	return nil
}

// EditCaption 修改草稿发布文案
func (s *ReelService) EditCaption(caption string) error {
	sess, err := s.editSession()
	if err != nil {
		return err
	}
	sess.SetCaption(caption)
	return nil
}

// EditShotVisual 修改草稿中某个镜头的画面描述
func (s *ReelService) EditShotVisual(index int, visual string) error {
	sess, err := s.editSession()
	if err != nil {
		return err
	}
	return sess.SetShotVisual(index, visual)
}

// EditShotDialogue 修改草稿中某个镜头的台词（空串清除台词）
func (s *ReelService) EditShotDialogue(index int, dialogue string) error {
	sess, err := s.editSession()
	if err != nil {
		return err
	}
	return sess.SetShotDialogue(index, dialogue)
}

// DeleteShot 删除草稿中的镜头并重新编号
func (s *ReelService) DeleteShot(index int) error {
	sess, err := s.editSession()
	if err != nil {
		return err
	}
	return sess.DeleteShot(index)
}

// SaveEdits 提交编辑会话：草稿成为新的权威剧本，回到预览
func (s *ReelService) SaveEdits() error {
	sess, err := s.editSession()
	if err != nil {
		return err
	}

	if err := s.pipe.SaveEdits(sess.Commit()); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return nil
}

// CancelEdits 放弃编辑会话，剧本不变，回到预览
func (s *ReelService) CancelEdits() error {
	if err := s.pipe.CancelEdits(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.session != nil {
		s.session.Discard()
		s.session = nil
	}
	s.mu.Unlock()
	return nil
}

// Post 模拟把定稿 Reel 发布到指定平台
// postLatency 模拟平台耗时；发布成功后 Reel 进入会话内 Feed
func (s *ReelService) Post(ctx context.Context, platforms []string, postLatency time.Duration) (*reel.PostedReel, error) {
	snap := s.pipe.Snapshot()
	if snap.Stage != pipeline.StagePost {
		return nil, reel.NewInvariantError("post", "only allowed from post, current stage: "+snap.Stage.String())
	}
	if snap.Screenplay == nil {
		return nil, reel.NewInvariantError("post", "no screenplay held")
	}
	if len(platforms) == 0 {
		return nil, reel.NewInvariantError("post", "at least one platform is required")
	}
	for _, p := range platforms {
		if !postPlatforms[p] {
			return nil, reel.NewInvariantError("post", "unsupported platform: "+p)
		}
	}

	// 模拟平台发布耗时
	if err := simulatedStep(postLatency)(ctx); err != nil {
		return nil, err
	}

	posted := reel.PostedReel{
		ID:         id.New(),
		Screenplay: snap.Screenplay.Clone(),
		Platforms:  platforms,
		PostedAt:   time.Now(),
		Views:      "0",
	}

	s.mu.Lock()
	s.posted = append(s.posted, posted)
	s.mu.Unlock()

	log.Info().
		Str("reel_id", posted.ID).
		Strs("platforms", platforms).
		Str("title", posted.Screenplay.Title).
		Msg("reel posted")
	return &posted, nil
}

// GoHome 回到首页并清空会话数据，Feed 中已发布的 Reel 保留
func (s *ReelService) GoHome() {
	s.pipe.GoHome()

	s.mu.Lock()
	if s.session != nil {
		s.session.Discard()
		s.session = nil
	}
	s.mu.Unlock()
}

// Back 返回上一界面
func (s *ReelService) Back() error {
	return s.pipe.Back()
}

// OpenFeed 从首页进入 Feed
func (s *ReelService) OpenFeed() error {
	return s.pipe.OpenFeed()
}

// Feed 返回 Feed 内容：演示数据 + 会话内发布的 Reel
func (s *ReelService) Feed() []FeedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]FeedItem, 0, len(feedSeed)+len(s.posted))
	items = append(items, feedSeed...)
	for _, p := range s.posted {
		items = append(items, FeedItem{
			ID:       p.ID,
			Title:    p.Screenplay.Title,
			Views:    p.Views,
			PostedAt: p.PostedAt.Format(time.RFC3339),
		})
	}
	return items
}

// IsInvariantError 判断是否为结构性约束错误（供 HTTP 层映射状态码）
func IsInvariantError(err error) bool {
	var ie *reel.InvariantError
	return errors.As(err, &ie)
}
