package systems

import (
	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/ecs"
)

// HazardMovementSystem 处理火球的匀速下落
type HazardMovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewHazardMovementSystem 创建火球移动系统
func NewHazardMovementSystem(em *ecs.EntityManager) *HazardMovementSystem {
	return &HazardMovementSystem{entityManager: em}
}

// Advance 让单个火球下落一帧（y += speed，无水平漂移）
// 返回移动后的Y坐标；实体不是火球时 ok 为 false
func (s *HazardMovementSystem) Advance(id ecs.EntityID) (y float64, ok bool) {
	hazard, ok := ecs.GetComponent[*components.HazardComponent](s.entityManager, id)
	if !ok {
		return 0, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return 0, false
	}

	pos.Y += hazard.Speed
	return pos.Y, true
}

// Hazards 按生成顺序返回所有存活的火球
func (s *HazardMovementSystem) Hazards() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.HazardComponent, *components.PositionComponent](s.entityManager)
}
