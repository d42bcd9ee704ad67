package reeltools

import (
	"regexp"
	"strings"
)

// markdownFencePattern 匹配 ```json ... ``` 或 ``` ... ``` 代码块
var markdownFencePattern = regexp.MustCompile(`(?s)^\s*` + "```" + `(?:json)?\s*\n(.*?)\n\s*` + "```" + `\s*$`)

// CleanJSONContent 清理 LLM 返回的 JSON 内容
// 移除 markdown 代码块标记与首尾空白；不做更进一步的格式修复，
// 清理后仍解析失败的输出按 schema 违约处理
func CleanJSONContent(content string) string {
	// 移除首尾空白
	content = strings.TrimSpace(content)

	// 移除 markdown 代码块标记（```json ... ``` 或 ``` ... ```）
	if matches := markdownFencePattern.FindStringSubmatch(content); len(matches) > 1 {
		content = matches[1]
	}

	// 移除可能残留的其他 markdown 标记
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	return content
}
