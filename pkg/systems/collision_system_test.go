package systems

import (
	"testing"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/ecs"
)

func TestCheckCircleCollision(t *testing.T) {
	tests := []struct {
		name     string
		x2, y2   float64
		expected bool
	}{
		{"完全重合", 100, 100, true},
		{"距离40（阈值35）", 140, 100, false},
		{"距离34", 134, 100, true},
		{"距离恰好35", 135, 100, false},
		{"垂直方向接近", 100, 130, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckCircleCollision(100, 100, 25, tt.x2, tt.y2, 20, 10)
			if got != tt.expected {
				t.Errorf("CheckCircleCollision((100,100), (%v,%v)) = %v, want %v", tt.x2, tt.y2, got, tt.expected)
			}
		})
	}
}

func TestCollisionSystem_Collides(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCollisionSystem(em, 10)

	player := em.CreateEntity()
	em.AddComponent(player, &components.PositionComponent{X: 100, Y: 100})
	em.AddComponent(player, &components.CollisionComponent{Radius: 25})

	near := em.CreateEntity()
	em.AddComponent(near, &components.PositionComponent{X: 100, Y: 100})
	em.AddComponent(near, &components.CollisionComponent{Radius: 20})

	far := em.CreateEntity()
	em.AddComponent(far, &components.PositionComponent{X: 140, Y: 100})
	em.AddComponent(far, &components.CollisionComponent{Radius: 20})

	noCollider := em.CreateEntity()
	em.AddComponent(noCollider, &components.PositionComponent{X: 100, Y: 100})

	if !system.Collides(player, near) {
		t.Error("Expected collision with overlapping hazard")
	}
	if system.Collides(player, far) {
		t.Error("Expected no collision at distance 40")
	}
	if system.Collides(player, noCollider) {
		t.Error("Entity without CollisionComponent should never collide")
	}
	if system.Collides(player, ecs.EntityID(999)) {
		t.Error("Missing entity should never collide")
	}
}
