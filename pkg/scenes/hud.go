package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/game"
	"github.com/decker502/firedodge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hudTextColor     = color.White
	gameOverColor    = color.RGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}
	levelInfoColor   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	subtleTextColor  = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	buttonFillColor  = color.RGBA{R: 0xff, G: 0x45, B: 0x00, A: 0xd0}
	buttonPressColor = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xd0}
)

// 结算遮罩淡入
const (
	overlayFadeMs   = 400.0
	overlayMaxAlpha = 0xb0
)

// HUD 分数/时间显示和结算画面，实现 game.UISink
type HUD struct {
	face         text.Face
	score        int
	survivalTime int
	gameOver     bool
	gameOverAt   float64 // 毫秒
	now          float64 // 毫秒
	info         game.GameOverInfo
}

// NewHUD 创建界面
func NewHUD(face text.Face) *HUD {
	return &HUD{face: face}
}

// UpdateHUD 记录当前分数和存活时间
func (h *HUD) UpdateHUD(score, survivalTime int) {
	h.score = score
	h.survivalTime = survivalTime
}

// Tick 记录当前时钟（毫秒），用于结算遮罩淡入
func (h *HUD) Tick(now float64) {
	h.now = now
}

// ShowGameOver 切换到结算显示
func (h *HUD) ShowGameOver(info game.GameOverInfo) {
	h.gameOver = true
	h.gameOverAt = h.now
	h.info = info
}

// OverlayAlpha 结算遮罩当前的不透明度
func (h *HUD) OverlayAlpha() uint8 {
	if !h.gameOver {
		return 0
	}
	t := utils.EaseOutCubic(utils.Progress(h.gameOverAt, h.now, overlayFadeMs))
	return uint8(utils.Lerp(0, overlayMaxAlpha, t))
}

// IsGameOver 是否正在显示结算
func (h *HUD) IsGameOver() bool {
	return h.gameOver
}

// StatusLines 返回左上角显示的文字
func (h *HUD) StatusLines() []string {
	return []string{
		fmt.Sprintf("Score: %d", h.score),
		fmt.Sprintf("Time: %ds", h.survivalTime),
	}
}

// Draw 绘制分数和时间，结算时叠加结算画面
func (h *HUD) Draw(screen *ebiten.Image) {
	for i, line := range h.StatusLines() {
		utils.DrawText(screen, line, h.face, config.HUDMarginX, config.HUDMarginY+float64(i)*config.HUDLineSpace, hudTextColor)
	}

	if !h.gameOver {
		return
	}

	w := float64(screen.Bounds().Dx())
	hgt := float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(hgt), color.RGBA{A: h.OverlayAlpha()}, false)

	y := hgt * 0.25
	utils.DrawCenteredText(screen, "GAME OVER", h.face, w/2, y, gameOverColor)
	y += config.HUDLineSpace * 2

	for i, line := range h.info.Lines() {
		var clr color.Color = hudTextColor
		if i >= 2 {
			clr = levelInfoColor
		}
		utils.DrawCenteredText(screen, line, h.face, w/2, y, clr)
		y += config.HUDLineSpace
	}
}

// drawButton 绘制矩形按钮和居中的标签
func drawButton(screen *ebiten.Image, face text.Face, btn *components.Button) {
	b := btn.Bounds
	fill := buttonFillColor
	if btn.IsPressed() {
		fill = buttonPressColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), fill, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 2, color.White, false)

	_, lineHeight := text.Measure("A", face, 0)
	utils.DrawCenteredText(screen, btn.Label, face, b.X+b.Width/2, b.Y+(b.Height-lineHeight)/2, color.White)
}
