// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer 一个处于按下状态的指针（触摸点或鼠标左键）
type Pointer struct {
	X, Y int
}

// ActivePointers 返回当前所有按下的指针位置
// 多点触摸时每个触摸点都会返回，鼠标左键按下时追加光标位置
func ActivePointers() []Pointer {
	touchIDs := ebiten.AppendTouchIDs(nil)
	pointers := make([]Pointer, 0, len(touchIDs)+1)

	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		pointers = append(pointers, Pointer{X: x, Y: y})
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pointers = append(pointers, Pointer{X: x, Y: y})
	}
	return pointers
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	// 触摸释放时使用保存的最后触摸位置
	releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(releasedTouchIDs) > 0 {
		return true, lastTouchX, lastTouchY
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsConfirmKeyJustPressed 检查确认键（Enter 或空格）是否刚刚按下
func IsConfirmKeyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
