package reeltools

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCleanJSONContent(t *testing.T) {
	Convey("剥离模型输出中的 markdown 代码栅栏", t, func() {
		Convey("```json 栅栏", func() {
			So(CleanJSONContent("```json\n{\"a\":1}\n```"), ShouldEqual, `{"a":1}`)
		})

		Convey("裸 ``` 栅栏", func() {
			So(CleanJSONContent("```\n{\"a\":1}\n```"), ShouldEqual, `{"a":1}`)
		})

		Convey("无栅栏时去除首尾空白后原样返回", func() {
			So(CleanJSONContent("  {\"a\":1}\n"), ShouldEqual, `{"a":1}`)
		})

		Convey("空输入返回空串", func() {
			So(CleanJSONContent(""), ShouldEqual, "")
			So(CleanJSONContent("```json\n```"), ShouldEqual, "")
		})
	})
}
