package entities

import (
	"fmt"
	"log"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
// 玩家水平居中，距场地底部 BottomOffset 像素
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器，可为 nil（精灵保持未加载状态，使用程序化图形）
//   - cfg: 游戏配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: em 或 cfg 为 nil 时返回错误
func NewPlayerEntity(em *ecs.EntityManager, rm ResourceLoader, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	x := cfg.Playfield.Width / 2
	y := cfg.Playfield.Height - cfg.Player.BottomOffset

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.CollisionComponent{Radius: cfg.Player.Radius})
	em.AddComponent(entityID, &components.PlayerComponent{
		Speed:    cfg.Player.Speed,
		InitialX: x,
		InitialY: y,
	})
	em.AddComponent(entityID, newSprite(rm, components.SpriteKindPlayer, cfg.Player.Image))

	log.Printf("[PlayerFactory] Created player entity %d at (%.1f, %.1f)", entityID, x, y)
	return entityID, nil
}
