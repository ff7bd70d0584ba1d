package main

import (
	"time"

	"github.com/decker502/firedodge/pkg/components"
)

// keyHoldDuration 终端只报告按键事件（依赖系统的自动重复），没有松开事件。
// 最后一次按下后的这段时间内都视为按住。
const keyHoldDuration = 150 * time.Millisecond

// keyHoldInput 根据按键时间戳推断左右方向是否按住，实现 systems.InputSource
type keyHoldInput struct {
	left  time.Time
	right time.Time
	now   func() time.Time
}

func newKeyHoldInput(now func() time.Time) *keyHoldInput {
	if now == nil {
		now = time.Now
	}
	return &keyHoldInput{now: now}
}

// PressLeft 记录一次左方向按键
func (k *keyHoldInput) PressLeft() {
	k.left = k.now()
}

// PressRight 记录一次右方向按键
func (k *keyHoldInput) PressRight() {
	k.right = k.now()
}

// Release 清除两个方向（重新开始时调用）
func (k *keyHoldInput) Release() {
	k.left = time.Time{}
	k.right = time.Time{}
}

// Poll 返回当前帧的移动意图
func (k *keyHoldInput) Poll() components.InputIntents {
	now := k.now()
	return components.InputIntents{
		MoveLeft:  !k.left.IsZero() && now.Sub(k.left) < keyHoldDuration,
		MoveRight: !k.right.IsZero() && now.Sub(k.right) < keyHoldDuration,
	}
}
