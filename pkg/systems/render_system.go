package systems

import (
	"image/color"
	"math"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BackgroundColor 场地背景色
var BackgroundColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}

// 程序化图形配色
var (
	playerHairColor  = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
	playerFaceColor  = color.RGBA{R: 0xff, G: 0xe4, B: 0xc4, A: 0xff}
	playerShirtColor = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	hazardOuterColor = color.RGBA{R: 0xff, G: 0x45, B: 0x00, A: 0xff}
	hazardMidColor   = color.RGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}
	hazardCoreColor  = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// smileSegments 笑脸弧线的折线段数
const smileSegments = 12

// RenderSystem 绘制玩家和火球
//
// 绘制顺序：清屏 → 玩家 → 火球（按生成顺序）。
// 精灵状态为 AssetLoaded 时绘制图片，否则绘制程序化图形。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制整个场地
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		s.drawEntity(screen, id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.HazardComponent](s.entityManager) {
		s.drawEntity(screen, id)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return
	}

	if sprite.State == components.AssetLoaded && sprite.Image != nil {
		drawSprite(screen, sprite.Image, pos.X, pos.Y, col.Radius)
		return
	}

	switch sprite.Kind {
	case components.SpriteKindPlayer:
		drawFallbackPlayer(screen, pos.X, pos.Y, col.Radius)
	case components.SpriteKindHazard:
		drawFallbackHazard(screen, pos.X, pos.Y, col.Radius)
	}
}

// drawSprite 将图片缩放到 2*radius 见方并居中绘制在 (x, y)
func drawSprite(screen, img *ebiten.Image, x, y, radius float64) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 || radius <= 0 {
		return
	}
	size := radius * 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(bounds.Dx()), size/float64(bounds.Dy()))
	op.GeoM.Translate(x-size/2, y-size/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawFallbackPlayer 程序化绘制玩家：头发、脸、眼睛、笑脸和红色衣服
func drawFallbackPlayer(screen *ebiten.Image, x, y, radius float64) {
	fillCircle(screen, x, y-10, radius-5, playerHairColor)
	fillCircle(screen, x, y, radius, playerFaceColor)

	vector.DrawFilledRect(screen, float32(x-8), float32(y-8), 3, 6, color.Black, false)
	vector.DrawFilledRect(screen, float32(x+5), float32(y-8), 3, 6, color.Black, false)

	// 下半圆笑脸，中心 (x, y+5)，半径 8
	for i := 0; i < smileSegments; i++ {
		a0 := math.Pi * float64(i) / smileSegments
		a1 := math.Pi * float64(i+1) / smileSegments
		vector.StrokeLine(screen,
			float32(x+8*math.Cos(a0)), float32(y+5+8*math.Sin(a0)),
			float32(x+8*math.Cos(a1)), float32(y+5+8*math.Sin(a1)),
			2, color.Black, true)
	}

	vector.DrawFilledRect(screen, float32(x-20), float32(y+20), 40, 15, playerShirtColor, false)
}

// drawFallbackHazard 程序化绘制火球：三层同心偏移的圆
func drawFallbackHazard(screen *ebiten.Image, x, y, radius float64) {
	fillCircle(screen, x, y, radius, hazardOuterColor)
	fillCircle(screen, x-5, y-5, radius-8, hazardMidColor)
	fillCircle(screen, x+3, y-3, radius-12, hazardCoreColor)
}

// fillCircle 半径不为正时不绘制
func fillCircle(screen *ebiten.Image, x, y, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)
}
