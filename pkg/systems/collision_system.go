package systems

import (
	"math"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/ecs"
)

// CollisionSystem 判定玩家与火球是否命中
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	tolerance     float64 // 视觉容差，允许精灵轻微重叠
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - overlapTolerance: 半径之和需要减去的容差（像素）
func NewCollisionSystem(em *ecs.EntityManager, overlapTolerance float64) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		tolerance:     overlapTolerance,
	}
}

// Collides 检查两个实体是否命中
// 任一实体缺少位置或碰撞组件时返回 false
func (s *CollisionSystem) Collides(a, b ecs.EntityID) bool {
	posA, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, a)
	if !ok {
		return false
	}
	colA, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, a)
	if !ok {
		return false
	}
	posB, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, b)
	if !ok {
		return false
	}
	colB, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, b)
	if !ok {
		return false
	}

	return CheckCircleCollision(posA.X, posA.Y, colA.Radius, posB.X, posB.Y, colB.Radius, s.tolerance)
}

// CheckCircleCollision 圆形命中判定
// 圆心距离严格小于 (r1 + r2 - tolerance) 时命中
//
// 例：(100,100) r=25 与 (100,100) r=20，容差10：距离 0 < 35，命中
//
//	(100,100) r=25 与 (140,100) r=20，容差10：距离 40 >= 35，未命中
func CheckCircleCollision(x1, y1, r1, x2, y2, r2, tolerance float64) bool {
	dx := x1 - x2
	dy := y1 - y2
	distance := math.Sqrt(dx*dx + dy*dy)
	return distance < r1+r2-tolerance
}
