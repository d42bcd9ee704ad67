package reeltools

import (
	"context"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"bookreel/internal/model/reel"
)

// fakeProvider 脚本化的 LLM 提供者，记录收到的提示词
type fakeProvider struct {
	response    string
	err         error
	lastPrompt  string
	lastImage   []byte
	lastMIME    string
	imageCalled bool
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeProvider) GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	f.imageCalled = true
	f.lastPrompt = prompt
	f.lastImage = image
	f.lastMIME = mimeType
	return f.response, f.err
}

const validAnalysisJSON = `{
  "detected_genre": "Romance",
  "content_type": "novel",
  "language_detected": "English",
  "scenes": [
    {
      "scene_id": 1,
      "scene_title": "The Window",
      "scene_text": "She stood by the window, watching the rain.",
      "scene_type": "emotional",
      "characters": [{"name": "Her", "role": "lead", "gender": "female", "key_action": "watching the rain"}],
      "mood": "melancholic",
      "estimated_duration_seconds": 30,
      "hook_line": "Some goodbyes are silent."
    },
    {
      "scene_id": 2,
      "scene_title": "The Letter",
      "scene_text": "The letter lay unopened on the desk.",
      "scene_type": "dramatic",
      "mood": "tense",
      "estimated_duration_seconds": 45,
      "hook_line": "Some words are never read.",
      "reason": "strong visual anchor"
    }
  ]
}`

func TestAnalyzer_Analyze(t *testing.T) {
	Convey("文本内容分析", t, func() {
		fake := &fakeProvider{response: validAnalysisJSON}
		analyzer := NewAnalyzer(fake)

		Convey("合法输出被解析并通过校验", func() {
			result, err := analyzer.Analyze(context.Background(), []byte("She stood by the window, watching the rain."), reel.MediaKindText)
			So(err, ShouldBeNil)
			So(result.DetectedGenre, ShouldEqual, "Romance")
			So(len(result.Scenes), ShouldEqual, 2)
			So(result.Scenes[0].SceneTitle, ShouldEqual, "The Window")
			So(result.Scenes[1].Reason, ShouldEqual, "strong visual anchor")
			So(fake.imageCalled, ShouldBeFalse)
		})

		Convey("原文内联在提示词里", func() {
			_, err := analyzer.Analyze(context.Background(), []byte("unique-marker-text"), reel.MediaKindText)
			So(err, ShouldBeNil)
			So(fake.lastPrompt, ShouldContainSubstring, "unique-marker-text")
			So(fake.lastPrompt, ShouldContainSubstring, "detected_genre")
		})

		Convey("带 markdown 代码栅栏的输出照常接受", func() {
			fake.response = "```json\n" + validAnalysisJSON + "\n```"
			result, err := analyzer.Analyze(context.Background(), []byte("text"), reel.MediaKindText)
			So(err, ShouldBeNil)
			So(len(result.Scenes), ShouldEqual, 2)
		})
	})

	Convey("图片内容分析走多模态通路", t, func() {
		fake := &fakeProvider{response: validAnalysisJSON}
		analyzer := NewAnalyzer(fake)

		image := []byte{0xFF, 0xD8, 0xFF, 0xE0}
		result, err := analyzer.Analyze(context.Background(), image, reel.MediaKindImage)
		So(err, ShouldBeNil)
		So(result, ShouldNotBeNil)
		So(fake.imageCalled, ShouldBeTrue)
		So(fake.lastImage, ShouldResemble, image)
		So(fake.lastMIME, ShouldEqual, "image/jpeg")
		// 图片不内联进提示词
		So(strings.Contains(fake.lastPrompt, "CONTENT:"), ShouldBeFalse)
	})

	Convey("非法输入被拒绝", t, func() {
		fake := &fakeProvider{response: validAnalysisJSON}
		analyzer := NewAnalyzer(fake)

		_, err := analyzer.Analyze(context.Background(), nil, reel.MediaKindText)
		So(err, ShouldNotBeNil)

		_, err = analyzer.Analyze(context.Background(), []byte("x"), reel.MediaKind("audio"))
		So(err, ShouldNotBeNil)
	})

	Convey("失败路径统一产出 AnalysisError", t, func() {
		Convey("模型调用失败", func() {
			fake := &fakeProvider{err: errors.New("rate limited")}
			_, err := NewAnalyzer(fake).Analyze(context.Background(), []byte("text"), reel.MediaKindText)

			var analysisErr *reel.AnalysisError
			So(errors.As(err, &analysisErr), ShouldBeTrue)
			So(errors.Unwrap(analysisErr), ShouldNotBeNil)
		})

		Convey("输出不是 JSON", func() {
			fake := &fakeProvider{response: "Sure! Here are the scenes I found:"}
			_, err := NewAnalyzer(fake).Analyze(context.Background(), []byte("text"), reel.MediaKindText)

			var analysisErr *reel.AnalysisError
			So(errors.As(err, &analysisErr), ShouldBeTrue)
		})

		Convey("场景列表为空", func() {
			fake := &fakeProvider{response: `{"detected_genre":"Romance","content_type":"novel","language_detected":"English","scenes":[]}`}
			_, err := NewAnalyzer(fake).Analyze(context.Background(), []byte("text"), reel.MediaKindText)
			So(err, ShouldNotBeNil)
		})

		Convey("scene_id 重复", func() {
			dup := strings.ReplaceAll(validAnalysisJSON, `"scene_id": 2`, `"scene_id": 1`)
			fake := &fakeProvider{response: dup}
			_, err := NewAnalyzer(fake).Analyze(context.Background(), []byte("text"), reel.MediaKindText)
			So(err, ShouldNotBeNil)
		})

		Convey("必填字段缺失", func() {
			missing := strings.ReplaceAll(validAnalysisJSON, `"scene_title": "The Window",`, "")
			fake := &fakeProvider{response: missing}
			_, err := NewAnalyzer(fake).Analyze(context.Background(), []byte("text"), reel.MediaKindText)
			So(err, ShouldNotBeNil)
		})
	})
}
