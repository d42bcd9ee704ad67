package reel

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func validAnalysis() *AnalysisResult {
	return &AnalysisResult{
		DetectedGenre:    "Romance",
		ContentType:      "novel",
		LanguageDetected: "English",
		Scenes: []Scene{
			{SceneID: 1, SceneTitle: "The Window", SceneText: "She stood by the window.", SceneType: "emotional", Mood: "melancholic", EstimatedDurationSeconds: 30, HookLine: "Some goodbyes are silent."},
			{SceneID: 2, SceneTitle: "The Letter", SceneText: "The letter lay unopened.", SceneType: "dramatic", Mood: "tense", EstimatedDurationSeconds: 45, HookLine: "Some words are never read."},
		},
	}
}

func TestAnalysisResult_Validate(t *testing.T) {
	Convey("分析结果校验", t, func() {
		Convey("完整结果通过", func() {
			So(validAnalysis().Validate(), ShouldBeNil)
		})

		Convey("场景列表不能为空", func() {
			r := validAnalysis()
			r.Scenes = nil
			So(r.Validate(), ShouldNotBeNil)
		})

		Convey("scene_id 必须唯一", func() {
			r := validAnalysis()
			r.Scenes[1].SceneID = 1
			So(r.Validate(), ShouldNotBeNil)
		})

		Convey("场景必填字段缺失被拒绝", func() {
			r := validAnalysis()
			r.Scenes[0].SceneTitle = ""
			So(r.Validate(), ShouldNotBeNil)

			r = validAnalysis()
			r.Scenes[1].HookLine = ""
			So(r.Validate(), ShouldNotBeNil)
		})

		Convey("预估时长不能为负", func() {
			r := validAnalysis()
			r.Scenes[0].EstimatedDurationSeconds = -1
			So(r.Validate(), ShouldNotBeNil)
		})
	})
}

func TestAnalysisResult_FindScene(t *testing.T) {
	Convey("场景按 id 查找", t, func() {
		r := validAnalysis()

		scene, ok := r.FindScene(2)
		So(ok, ShouldBeTrue)
		So(scene.SceneTitle, ShouldEqual, "The Letter")

		_, ok = r.FindScene(99)
		So(ok, ShouldBeFalse)
	})
}

func TestMediaKind_Valid(t *testing.T) {
	Convey("媒体类型取值", t, func() {
		So(MediaKindText.Valid(), ShouldBeTrue)
		So(MediaKindImage.Valid(), ShouldBeTrue)
		So(MediaKind("audio").Valid(), ShouldBeFalse)
		So(MediaKind("").Valid(), ShouldBeFalse)
	})
}

func TestInputMethod_Valid(t *testing.T) {
	Convey("输入方式取值", t, func() {
		So(InputMethodText.Valid(), ShouldBeTrue)
		So(InputMethodImage.Valid(), ShouldBeTrue)
		So(InputMethodPDF.Valid(), ShouldBeTrue)
		So(InputMethodURL.Valid(), ShouldBeTrue)
		So(InputMethod("carrier-pigeon").Valid(), ShouldBeFalse)
	})
}
