package scenes

import (
	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// updateTapButton 更新点按式按钮的状态
// 指针在按钮内松开时返回 true（鼠标和触摸都支持）
func updateTapButton(btn *components.Button) bool {
	utils.UpdateLastTouchPosition()

	btn.State = components.UINormal
	for _, p := range utils.ActivePointers() {
		if btn.Contains(p.X, p.Y) {
			btn.State = components.UIPressed
			break
		}
	}
	if btn.State == components.UINormal {
		if x, y := ebiten.CursorPosition(); btn.Contains(x, y) {
			btn.State = components.UIHovered
		}
	}

	released, x, y := utils.IsPointerJustReleased()
	return released && btn.Contains(x, y)
}
