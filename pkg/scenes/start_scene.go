package scenes

import (
	"log"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/game"
	"github.com/decker502/firedodge/pkg/systems"
	"github.com/decker502/firedodge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// StartScene 标题画面：显示玩法说明和开始按钮
type StartScene struct {
	ctx         *Context
	face        text.Face
	startButton *components.Button
	requested   bool
}

// NewStartScene 创建标题画面
func NewStartScene(ctx *Context) *StartScene {
	w, h := ctx.Config.Playfield.Width, ctx.Config.Playfield.Height
	return &StartScene{
		ctx:         ctx,
		face:        utils.DefaultFace(),
		startButton: components.NewButton(config.CenterButtonRect(w, h), "START"),
	}
}

// InstructionLines 返回玩法说明文字
// 移动端提示屏幕按钮，桌面端提示键盘
func InstructionLines(mobile bool) []string {
	if mobile {
		return []string{
			"Dodge the falling fire!",
			"Hold the < and > buttons to move.",
		}
	}
	return []string{
		"Dodge the falling fire!",
		"Move with Left/Right or A/D, or hold the on-screen buttons.",
		"Press Enter or click START to begin.",
	}
}

// Update 点击开始按钮或按确认键后进入游戏
func (s *StartScene) Update(now float64) {
	if s.requested {
		return
	}
	if updateTapButton(s.startButton) || utils.IsConfirmKeyJustPressed() {
		log.Printf("[StartScene] Start requested at %.0fms", now)
		s.requested = true
		s.ctx.SceneManager.RequestScene(game.ScenePlay)
	}
}

// Draw 绘制标题和说明
func (s *StartScene) Draw(screen *ebiten.Image) {
	screen.Fill(systems.BackgroundColor)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	utils.DrawCenteredText(screen, config.WindowTitle, s.face, w/2, h*0.25, gameOverColor)

	y := h*0.25 + config.HUDLineSpace*2
	for _, line := range InstructionLines(utils.IsMobile()) {
		utils.DrawCenteredText(screen, line, s.face, w/2, y, subtleTextColor)
		y += config.HUDLineSpace
	}

	drawButton(screen, s.face, s.startButton)
}
