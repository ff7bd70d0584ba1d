package systems

import (
	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/ecs"
)

// PlayerMovementSystem 根据移动意图更新玩家的水平位置
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager) *PlayerMovementSystem {
	return &PlayerMovementSystem{entityManager: em}
}

// Update 按意图移动所有玩家实体
//
// 左右两个判断相互独立：同时按住两个方向时，只有两侧边界检查都通过才会抵消，
// 贴边时会朝远离边界的方向移动一步。
// 边界只在移动前检查，速度大于剩余距离时单帧可能越过边界一小段。
//
// 参数:
//   - intents: 当前帧的移动意图
//   - playfieldWidth: 场地宽度（像素），不大于 0 时边界检查自然失效
func (s *PlayerMovementSystem) Update(intents components.InputIntents, playfieldWidth float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		if intents.MoveLeft && pos.X-col.Radius > 0 {
			pos.X -= player.Speed
		}
		if intents.MoveRight && pos.X+col.Radius < playfieldWidth {
			pos.X += player.Speed
		}
	}
}

// Reset 将所有玩家实体复位到初始坐标
func (s *PlayerMovementSystem) Reset() {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X = player.InitialX
		pos.Y = player.InitialY
	}
}
