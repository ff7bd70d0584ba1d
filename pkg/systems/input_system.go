package systems

import (
	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource 输入源：每帧提供一次移动意图
type InputSource interface {
	Poll() components.InputIntents
}

// InputSystem 从键盘和屏幕按钮读取移动意图
//
// 键盘：←/A 左移，→/D 右移（按住持续移动）
// 鼠标/触摸：按住左右两个屏幕按钮，支持多点触摸同时按住
type InputSystem struct {
	leftButton  *components.Button
	rightButton *components.Button
}

// NewInputSystem 创建输入系统
// 按钮可为 nil（只使用键盘）
func NewInputSystem(leftButton, rightButton *components.Button) *InputSystem {
	return &InputSystem{
		leftButton:  leftButton,
		rightButton: rightButton,
	}
}

// Poll 采样当前帧的输入并更新按钮按下状态
func (s *InputSystem) Poll() components.InputIntents {
	keyLeft := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	keyRight := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	return ResolveIntents(keyLeft, keyRight, utils.ActivePointers(), s.leftButton, s.rightButton)
}

// ResolveIntents 合并键盘状态和指针位置得到移动意图
// 同时把按钮状态更新为 UIPressed / UINormal，供渲染时高亮
func ResolveIntents(keyLeft, keyRight bool, pointers []utils.Pointer, leftButton, rightButton *components.Button) components.InputIntents {
	intents := components.InputIntents{MoveLeft: keyLeft, MoveRight: keyRight}

	if holdButton(leftButton, pointers) {
		intents.MoveLeft = true
	}
	if holdButton(rightButton, pointers) {
		intents.MoveRight = true
	}
	return intents
}

// holdButton 任意指针落在按钮内即视为按住
func holdButton(button *components.Button, pointers []utils.Pointer) bool {
	if button == nil {
		return false
	}
	for _, p := range pointers {
		if button.Contains(p.X, p.Y) {
			button.State = components.UIPressed
			return true
		}
	}
	button.State = components.UINormal
	return false
}
