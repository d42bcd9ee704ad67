package pipeline

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"bookreel/internal/model/reel"
)

func testAnalysis() *reel.AnalysisResult {
	return &reel.AnalysisResult{
		DetectedGenre:    "Romance",
		ContentType:      "novel",
		LanguageDetected: "English",
		Scenes: []reel.Scene{
			{
				SceneID:                  1,
				SceneTitle:               "The Window",
				SceneText:                "She stood by the window, watching the rain.",
				SceneType:                "emotional",
				Mood:                     "melancholic",
				EstimatedDurationSeconds: 30,
				HookLine:                 "Some goodbyes are silent.",
			},
			{
				SceneID:                  2,
				SceneTitle:               "The Letter",
				SceneText:                "The letter lay unopened on the desk.",
				SceneType:                "dramatic",
				Mood:                     "tense",
				EstimatedDurationSeconds: 45,
				HookLine:                 "Some words are never read.",
			},
		},
	}
}

func testConfig() reel.GenerationConfig {
	return reel.GenerationConfig{
		Style:            "K-Drama",
		LeadActor:        "Park Seo Joon",
		LeadActress:      "IU",
		AudioLanguage:    "Korean",
		SubtitleLanguage: "English",
		MusicMood:        "romantic_soft",
		Duration:         "30s",
	}
}

func dialogue(s string) *string { return &s }

func testScreenplay(shots int) *reel.Screenplay {
	sp := &reel.Screenplay{
		Title:            "The Window",
		Duration:         "30s",
		Genre:            "Romance",
		Style:            "K-Drama",
		AudioLanguage:    "Korean",
		SubtitleLanguage: "English",
		Caption:          "Some goodbyes are silent. #romance",
		Hashtags:         []string{"#romance", "#kdrama"},
	}
	for i := 1; i <= shots; i++ {
		sp.Shots = append(sp.Shots, reel.Shot{
			ShotNumber: i,
			Duration:   "4s",
			Visual:     "Rain streaks down the window pane",
			Camera:     "slow push-in",
			Character:  "Lead Actress",
			Action:     "watches the rain",
			Dialogue:   dialogue("비가 오네요..."),
			MusicMood:  "romantic_soft",
		})
	}
	return sp
}

// toGenerating 把流水线推进到 generating 阶段
func toGenerating(p *Pipeline) {
	So(p.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
	So(p.BeginAnalysis(), ShouldBeNil)
	So(p.CompleteAnalysis(testAnalysis()), ShouldBeNil)
	So(p.SelectScene(1), ShouldBeNil)
	So(p.RequestGenerate(testConfig()), ShouldBeNil)
}

// toPreview 把流水线推进到 preview 阶段
func toPreview(p *Pipeline) {
	toGenerating(p)
	So(p.CompleteGeneration(testScreenplay(4)), ShouldBeNil)
}

func TestPipeline_AuthoringChain(t *testing.T) {
	Convey("创作链路按迁移表推进", t, func() {
		p := New()
		So(p.Stage(), ShouldEqual, StageHome)

		Convey("home → input → scene_selection → customize → generating → preview → post", func() {
			So(p.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageInput)

			So(p.BeginAnalysis(), ShouldBeNil)
			So(p.CompleteAnalysis(testAnalysis()), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageSceneSelection)

			So(p.SelectScene(1), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageCustomize)
			scene, ok := p.SelectedScene()
			So(ok, ShouldBeTrue)
			So(scene.SceneTitle, ShouldEqual, "The Window")

			So(p.RequestGenerate(testConfig()), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageGenerating)

			So(p.CompleteGeneration(testScreenplay(4)), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StagePreview)

			So(p.Approve(), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StagePost)
		})

		Convey("preview ⇄ editor 往返", func() {
			toPreview(p)

			So(p.Edit(), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageEditor)

			So(p.CancelEdits(), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StagePreview)

			So(p.Edit(), ShouldBeNil)
			edited := testScreenplay(3)
			edited.Title = "The Window (edited)"
			So(p.SaveEdits(edited), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StagePreview)
			So(p.Screenplay().Title, ShouldEqual, "The Window (edited)")
			So(len(p.Screenplay().Shots), ShouldEqual, 3)
		})

		Convey("清空自由文本字段的编辑照常保存", func() {
			toPreview(p)
			So(p.Edit(), ShouldBeNil)

			edited := testScreenplay(4)
			edited.Title = ""
			edited.Caption = ""
			So(p.SaveEdits(edited), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StagePreview)
			So(p.Screenplay().Title, ShouldEqual, "")
		})

		Convey("feed 只能从首页进入", func() {
			So(p.OpenFeed(), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageFeed)

			p2 := New()
			So(p2.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
			err := p2.OpenFeed()
			So(err, ShouldNotBeNil)
			So(p2.Stage(), ShouldEqual, StageInput)
		})
	})
}

func TestPipeline_Guards(t *testing.T) {
	Convey("前置数据缺失的迁移被快速拒绝且状态不变", t, func() {
		Convey("没有分析结果不能进入场景选择", func() {
			p := New()
			So(p.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
			So(p.BeginAnalysis(), ShouldBeNil)

			var invariantErr *reel.InvariantError
			err := p.CompleteAnalysis(nil)
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, invariantErr)
			So(p.Stage(), ShouldEqual, StageInput)
		})

		Convey("选择不属于当前分析结果的场景被拒绝", func() {
			p := New()
			So(p.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
			So(p.BeginAnalysis(), ShouldBeNil)
			So(p.CompleteAnalysis(testAnalysis()), ShouldBeNil)

			err := p.SelectScene(99)
			So(err, ShouldNotBeNil)
			So(p.Stage(), ShouldEqual, StageSceneSelection)
			_, ok := p.SelectedScene()
			So(ok, ShouldBeFalse)
		})

		Convey("非法配置不能发起生成", func() {
			p := New()
			So(p.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
			So(p.BeginAnalysis(), ShouldBeNil)
			So(p.CompleteAnalysis(testAnalysis()), ShouldBeNil)
			So(p.SelectScene(1), ShouldBeNil)

			cfg := testConfig()
			cfg.Style = "Noir"
			So(p.RequestGenerate(cfg), ShouldNotBeNil)
			So(p.Stage(), ShouldEqual, StageCustomize)

			cfg = testConfig()
			cfg.AudioLanguage = "Klingon"
			So(p.RequestGenerate(cfg), ShouldNotBeNil)
			So(p.Stage(), ShouldEqual, StageCustomize)
		})

		Convey("没有剧本不能进入预览/编辑/发布", func() {
			p := New()
			So(p.Approve(), ShouldNotBeNil)
			So(p.Edit(), ShouldNotBeNil)
			So(p.SaveEdits(testScreenplay(2)), ShouldNotBeNil)
			So(p.Stage(), ShouldEqual, StageHome)
		})

		Convey("input 阶段不允许第二个在途分析调用", func() {
			p := New()
			So(p.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
			So(p.BeginAnalysis(), ShouldBeNil)
			So(p.BeginAnalysis(), ShouldNotBeNil)
		})

		Convey("编号不连续的剧本保存被拒绝", func() {
			p := New()
			toPreview(p)
			So(p.Edit(), ShouldBeNil)

			bad := testScreenplay(3)
			bad.Shots[1].ShotNumber = 5
			err := p.SaveEdits(bad)
			So(err, ShouldNotBeNil)
			So(p.Stage(), ShouldEqual, StageEditor)
			So(p.Screenplay().Shots[1].ShotNumber, ShouldEqual, 2)
		})
	})
}

func TestPipeline_FailureRollback(t *testing.T) {
	Convey("失败回滚语义", t, func() {
		Convey("分析失败停留在 input，已有状态不变", func() {
			p := New()
			So(p.SelectInputMethod(reel.InputMethodImage), ShouldBeNil)
			So(p.BeginAnalysis(), ShouldBeNil)

			p.FailAnalysis()
			So(p.Stage(), ShouldEqual, StageInput)
			So(p.Analysis(), ShouldBeNil)

			// 可以直接重试
			So(p.BeginAnalysis(), ShouldBeNil)
		})

		Convey("生成失败回到 customize，场景保留，配置丢弃", func() {
			p := New()
			toGenerating(p)

			So(p.FailGeneration(), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageCustomize)

			scene, ok := p.SelectedScene()
			So(ok, ShouldBeTrue)
			So(scene.SceneID, ShouldEqual, 1)

			_, ok = p.PendingConfig()
			So(ok, ShouldBeFalse)
			So(p.Screenplay(), ShouldBeNil)
		})
	})
}

func TestPipeline_Progress(t *testing.T) {
	Convey("生成进度检查点", t, func() {
		p := New()
		toGenerating(p)

		Convey("进度沿 20→50→80→100 单调推进", func() {
			So(p.SetProgress(ProgressScreenplay, "Writing multi-lingual screenplay..."), ShouldBeNil)
			So(p.SetProgress(ProgressVisuals, "Generating visuals (Simulated)..."), ShouldBeNil)
			So(p.SetProgress(ProgressAudio, "Adding Korean audio..."), ShouldBeNil)

			So(p.CompleteGeneration(testScreenplay(4)), ShouldBeNil)
			progress, _ := p.Progress()
			So(progress, ShouldEqual, ProgressDone)
		})

		Convey("进度不允许回退或越界", func() {
			So(p.SetProgress(ProgressVisuals, "visuals"), ShouldBeNil)
			So(p.SetProgress(ProgressScreenplay, "screenplay"), ShouldNotBeNil)
			So(p.SetProgress(101, "overflow"), ShouldNotBeNil)

			progress, step := p.Progress()
			So(progress, ShouldEqual, ProgressVisuals)
			So(step, ShouldEqual, "visuals")
		})

		Convey("非生成阶段不允许更新进度", func() {
			So(p.CompleteGeneration(testScreenplay(2)), ShouldBeNil)
			So(p.SetProgress(ProgressDone, "done"), ShouldNotBeNil)
		})
	})
}

func TestPipeline_GoHomeReset(t *testing.T) {
	Convey("goHome 清空全部槽位，重新创作无残留", t, func() {
		p := New()
		toPreview(p)
		So(p.Approve(), ShouldBeNil)

		p.GoHome()

		snap := p.Snapshot()
		So(snap.Stage, ShouldEqual, StageHome)
		So(snap.Analysis, ShouldBeNil)
		So(snap.SelectedScene, ShouldBeNil)
		So(snap.Screenplay, ShouldBeNil)
		So(snap.Progress, ShouldEqual, ProgressStart)
		So(snap.InputMethod, ShouldEqual, reel.InputMethod(""))

		// 重新走一遍输入+分析，状态干净
		So(p.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
		So(p.BeginAnalysis(), ShouldBeNil)
		So(p.CompleteAnalysis(testAnalysis()), ShouldBeNil)
		So(p.Stage(), ShouldEqual, StageSceneSelection)
	})
}

func TestPipeline_Back(t *testing.T) {
	Convey("返回上一界面", t, func() {
		p := New()

		Convey("input 返回即整体重置", func() {
			So(p.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
			So(p.Back(), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageHome)
		})

		Convey("scene_selection → input、customize → scene_selection，槽位保留", func() {
			So(p.SelectInputMethod(reel.InputMethodText), ShouldBeNil)
			So(p.BeginAnalysis(), ShouldBeNil)
			So(p.CompleteAnalysis(testAnalysis()), ShouldBeNil)
			So(p.SelectScene(2), ShouldBeNil)

			So(p.Back(), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageSceneSelection)
			So(p.Analysis(), ShouldNotBeNil)

			So(p.Back(), ShouldBeNil)
			So(p.Stage(), ShouldEqual, StageInput)
		})

		Convey("生成中没有返回路径", func() {
			toGenerating(p)
			So(p.Back(), ShouldNotBeNil)
			So(p.Stage(), ShouldEqual, StageGenerating)
		})
	})
}
