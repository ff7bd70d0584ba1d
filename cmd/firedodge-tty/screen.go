package main

import (
	"fmt"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/ecs"
	"github.com/decker502/firedodge/pkg/game"
	"github.com/gdamore/tcell/v2"
)

var (
	playerStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	hazardStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	titleStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	infoStyle     = tcell.StyleDefault.Foreground(tcell.ColorGold)
	subtleStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	groundStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	fallbackStyle = tcell.StyleDefault
)

// terminalUI 把场地缩放到终端网格上绘制，实现 game.UISink
// 最后一行留给状态栏
type terminalUI struct {
	screen   tcell.Screen
	cfg      *config.GameConfig
	score    int
	survival int
	gameOver bool
	info     game.GameOverInfo
}

func newTerminalUI(screen tcell.Screen, cfg *config.GameConfig) *terminalUI {
	return &terminalUI{screen: screen, cfg: cfg}
}

// UpdateHUD 记录分数和时间
func (u *terminalUI) UpdateHUD(score, survivalTime int) {
	u.score = score
	u.survival = survivalTime
}

// ShowGameOver 显示结算信息
func (u *terminalUI) ShowGameOver(info game.GameOverInfo) {
	u.gameOver = true
	u.info = info
}

// reset 新的一局开始时清除结算
func (u *terminalUI) reset() {
	u.gameOver = false
	u.info = game.GameOverInfo{}
	u.score = 0
	u.survival = 0
}

// toCell 把场地坐标映射到终端单元格
// 场地尺寸或终端尺寸无效时返回 ok=false
func toCell(x, y, width, height float64, cols, rows int) (col, row int, ok bool) {
	if width <= 0 || height <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	col = int(x / width * float64(cols))
	row = int(y / height * float64(rows))
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return col, row, false
	}
	return col, row, true
}

// drawTitle 绘制标题画面
func (u *terminalUI) drawTitle() {
	u.screen.Clear()
	cols, rows := u.screen.Size()
	mid := rows / 3
	drawCentered(u.screen, cols, mid, config.WindowTitle, titleStyle)
	drawCentered(u.screen, cols, mid+2, "Dodge the falling fire!", subtleStyle)
	drawCentered(u.screen, cols, mid+3, "Move with Left/Right or A/D", subtleStyle)
	drawCentered(u.screen, cols, mid+5, "Press Enter to start, Esc to quit", infoStyle)
	u.screen.Show()
}

// draw 绘制一帧
func (u *terminalUI) draw(session *game.Session) {
	u.screen.Clear()
	cols, rows := u.screen.Size()
	fieldRows := rows - 1
	w, h := u.cfg.Playfield.Width, u.cfg.Playfield.Height

	for c := 0; c < cols; c++ {
		u.screen.SetContent(c, fieldRows-1, '_', nil, groundStyle)
	}

	em := session.EntityManager()
	for _, id := range ecs.GetEntitiesWith2[*components.HazardComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if col, row, ok := toCell(pos.X, pos.Y, w, h, cols, fieldRows); ok {
			u.screen.SetContent(col, row, '*', nil, hazardStyle)
		}
	}

	px, py := session.PlayerPosition()
	if col, row, ok := toCell(px, py, w, h, cols, fieldRows); ok {
		u.screen.SetContent(col, row, '@', nil, playerStyle)
	}

	status := fmt.Sprintf(" Score: %d   Time: %ds   [Esc] quit ", u.score, u.survival)
	drawText(u.screen, 0, rows-1, padRight(status, cols), statusStyle)

	if u.gameOver {
		u.drawGameOver(cols, rows)
	}
	u.screen.Show()
}

func (u *terminalUI) drawGameOver(cols, rows int) {
	y := rows / 3
	drawCentered(u.screen, cols, y, "GAME OVER", titleStyle)
	for i, line := range u.info.Lines() {
		style := fallbackStyle
		if i >= 2 {
			style = infoStyle
		}
		drawCentered(u.screen, cols, y+2+i, line, style)
	}
	drawCentered(u.screen, cols, y+7, "Press Enter to restart", subtleStyle)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(screen tcell.Screen, cols, y int, s string, style tcell.Style) {
	x := (cols - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, s, style)
}

func padRight(s string, width int) string {
	for len([]rune(s)) < width {
		s += " "
	}
	return s
}
