package entities

import (
	"fmt"
	"log"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/ecs"
)

// NewHazardEntity 创建下落的火球实体
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器，可为 nil
//   - x, y: 初始中心坐标（y 通常在场地上方）
//   - speed: 下落速度，生成后不再改变
//   - cfg: 游戏配置（提供半径和精灵图路径）
func NewHazardEntity(em *ecs.EntityManager, rm ResourceLoader, x, y, speed float64, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.CollisionComponent{Radius: cfg.Hazard.Radius})
	em.AddComponent(entityID, &components.HazardComponent{Speed: speed})
	em.AddComponent(entityID, newSprite(rm, components.SpriteKindHazard, cfg.Hazard.Image))

	return entityID, nil
}

// newSprite 创建精灵组件并尝试加载图片
// 加载失败只记录日志，精灵永久使用程序化图形
func newSprite(rm ResourceLoader, kind components.SpriteKind, path string) *components.SpriteComponent {
	sprite := &components.SpriteComponent{Kind: kind, State: components.AssetUnloaded}
	if rm == nil || path == "" {
		return sprite
	}

	img, err := rm.LoadImage(path)
	if err != nil {
		log.Printf("[EntityFactory] Warning: sprite %s unavailable, using fallback shape: %v", path, err)
	}
	sprite.Resolve(img)
	return sprite
}
