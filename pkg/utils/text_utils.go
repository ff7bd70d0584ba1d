package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace 返回内置的位图字体
// 游戏不打包字体文件，所有界面文字使用 basicfont 7x13
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// MeasureText 测量单行文本宽度（像素）
func MeasureText(textStr string, face text.Face) float64 {
	if textStr == "" || face == nil {
		return 0
	}
	w, _ := text.Measure(textStr, face, 0)
	return w
}

// DrawText 在指定位置绘制文本（左上角对齐）
func DrawText(screen *ebiten.Image, textStr string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, textStr, face, op)
}

// DrawCenteredText 以 centerX 为中心水平居中绘制文本
func DrawCenteredText(screen *ebiten.Image, textStr string, face text.Face, centerX, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, textStr, face, op)
}
