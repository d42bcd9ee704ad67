package reel

import "fmt"

// AnalysisError 内容分析失败（外部模型调用失败或返回不符合 schema 的输出）
// 恢复策略：回到 Input 阶段，用户可重试，调用方状态保持不变
type AnalysisError struct {
	Reason string // 失败原因（面向日志/用户提示）
	Err    error  // 底层错误（可选）
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("analysis failed: %s", e.Reason)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// NewAnalysisError 创建内容分析错误
func NewAnalysisError(reason string, err error) *AnalysisError {
	return &AnalysisError{Reason: reason, Err: err}
}

// GenerationError 剧本生成失败，语义同 AnalysisError，作用域为剧本生成
// 恢复策略：回到 Customize 阶段，已选场景保留，配置需重新提交
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError 创建剧本生成错误
func NewGenerationError(reason string, err error) *GenerationError {
	return &GenerationError{Reason: reason, Err: err}
}

// InvariantError 本地结构性约束被破坏（删除最后一个镜头、前置数据缺失进入阶段等）
// 不重试：直接上报，触发它的操作必须是 no-op
type InvariantError struct {
	Op     string // 触发约束检查的操作
	Reason string // 被破坏的约束
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Reason)
}

// NewInvariantError 创建结构性约束错误
func NewInvariantError(op, reason string) *InvariantError {
	return &InvariantError{Op: op, Reason: reason}
}
