package components

import "github.com/hajimehoshi/ebiten/v2"

// AssetState 精灵图的加载状态
type AssetState int

const (
	// AssetUnloaded 尚未尝试加载，渲染时使用程序化图形
	AssetUnloaded AssetState = iota
	// AssetLoaded 图片加载成功，渲染时绘制图片
	AssetLoaded
	// AssetFallbackOnly 加载失败，永久使用程序化图形（不重试）
	AssetFallbackOnly
)

// String 返回状态名称（用于日志）
func (s AssetState) String() string {
	switch s {
	case AssetUnloaded:
		return "unloaded"
	case AssetLoaded:
		return "loaded"
	case AssetFallbackOnly:
		return "fallback"
	}
	return "unknown"
}

// SpriteKind 决定程序化图形的样式
type SpriteKind int

const (
	SpriteKindPlayer SpriteKind = iota
	SpriteKindHazard
)

// SpriteComponent 存储实体的视觉表现
// 图片以 2*半径 的尺寸居中绘制在实体位置上
type SpriteComponent struct {
	Kind  SpriteKind
	State AssetState
	Image *ebiten.Image // 仅在 State == AssetLoaded 时有效
}

// Resolve 根据加载结果更新精灵状态
// img 为 nil 表示加载失败，精灵永久降级为程序化图形
func (s *SpriteComponent) Resolve(img *ebiten.Image) {
	if s.State == AssetFallbackOnly {
		return
	}
	if img == nil {
		s.Image = nil
		s.State = AssetFallbackOnly
		return
	}
	s.Image = img
	s.State = AssetLoaded
}
