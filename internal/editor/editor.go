// Package editor 实现剧本的结构化编辑会话
//
// 会话在创建时对剧本做一次深拷贝，此后所有编辑只作用于副本；
// Commit 把副本交还调用方作为新的权威剧本，Discard 直接丢弃，
// 两种结束方式都不会触碰源剧本
package editor

import (
	"fmt"

	"bookreel/internal/model/reel"
)

// Session 一次编辑会话，独占持有剧本副本直到 Commit/Discard
type Session struct {
	draft *reel.Screenplay
}

// NewSession 基于剧本副本创建编辑会话
func NewSession(sp *reel.Screenplay) (*Session, error) {
	if sp == nil {
		return nil, reel.NewInvariantError("newSession", "screenplay is nil")
	}
	if err := sp.Validate(); err != nil {
		return nil, reel.NewInvariantError("newSession", err.Error())
	}

	return &Session{draft: sp.Clone()}, nil
}

// Draft 返回当前编辑中的副本（只读用途）
func (s *Session) Draft() *reel.Screenplay {
	return s.draft
}

// SetTitle 修改标题（自由文本，任何字符串都接受）
func (s *Session) SetTitle(title string) {
	s.draft.Title = title
}

// SetCaption 修改发布文案
func (s *Session) SetCaption(caption string) {
	s.draft.Caption = caption
}

// SetShotVisual 按下标修改镜头画面描述
func (s *Session) SetShotVisual(index int, visual string) error {
	if err := s.checkIndex("setShotVisual", index); err != nil {
		return err
	}
	s.draft.Shots[index].Visual = visual
	return nil
}

// SetShotDialogue 按下标修改镜头台词；空字符串表示清除台词
func (s *Session) SetShotDialogue(index int, dialogue string) error {
	if err := s.checkIndex("setShotDialogue", index); err != nil {
		return err
	}
	if dialogue == "" {
		s.draft.Shots[index].Dialogue = nil
	} else {
		s.draft.Shots[index].Dialogue = &dialogue
	}
	return nil
}

// DeleteShot 删除指定下标的镜头，并对剩余镜头无条件重新编号
//
// 这是系统中唯一允许重新编号的位置：删除点之后的每个镜头编号整体前移一位，
// 保证 shot_number 始终是连续的 1..N。只剩一个镜头时拒绝删除，
// 失败时副本保持完全不变（操作级原子性）
func (s *Session) DeleteShot(index int) error {
	if err := s.checkIndex("deleteShot", index); err != nil {
		return err
	}
	if len(s.draft.Shots) == 1 {
		return reel.NewInvariantError("deleteShot", "cannot remove the last remaining shot")
	}

	s.draft.Shots = append(s.draft.Shots[:index], s.draft.Shots[index+1:]...)
	for i := range s.draft.Shots {
		s.draft.Shots[i].ShotNumber = i + 1
	}
	return nil
}

// Commit 结束会话，把编辑后的副本交还调用方
// 本身不改变流水线状态——状态迁移（save）是调用方的职责
func (s *Session) Commit() *reel.Screenplay {
	return s.draft
}

// Discard 放弃会话，无任何残留副作用
func (s *Session) Discard() {
	s.draft = nil
}

// checkIndex 校验镜头下标
func (s *Session) checkIndex(op string, index int) error {
	if index < 0 || index >= len(s.draft.Shots) {
		return reel.NewInvariantError(op, fmt.Sprintf("shot index %d out of range [0,%d)", index, len(s.draft.Shots)))
	}
	return nil
}
