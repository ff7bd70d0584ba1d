package entities

import "github.com/hajimehoshi/ebiten/v2"

// ResourceLoader 实体工厂需要的资源加载接口
// 由 game.ResourceManager 实现，测试中可替换为 mock
type ResourceLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}
