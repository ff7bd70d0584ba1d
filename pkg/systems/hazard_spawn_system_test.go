package systems

import (
	"testing"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/ecs"
)

func TestHazardSpawnSystem_StrictInterval(t *testing.T) {
	em, system, _ := newTestSpawnSystem(&fixedRandom{values: []float64{0.5}})

	// 间隔 1500ms，严格大于才生成
	if _, spawned := system.Update(1500, 1); spawned {
		t.Fatal("Should not spawn when elapsed == interval")
	}
	if _, spawned := system.Update(1500.5, 1); !spawned {
		t.Fatal("Should spawn when elapsed > interval")
	}
	if system.LastSpawnTime() != 1500.5 {
		t.Errorf("LastSpawnTime = %v, want 1500.5", system.LastSpawnTime())
	}
	// 存活 1 秒时新间隔 1480
	if system.SpawnInterval() != 1480 {
		t.Errorf("SpawnInterval = %v, want 1480", system.SpawnInterval())
	}
	if em.EntityCount() != 1 {
		t.Errorf("EntityCount = %d, want 1", em.EntityCount())
	}
}

func TestHazardSpawnSystem_SpawnPositionAndSpeed(t *testing.T) {
	em, system, cfg := newTestSpawnSystem(&fixedRandom{values: []float64{0.5}})

	id, spawned := system.Update(2000, 10)
	if !spawned {
		t.Fatal("Expected a hazard to spawn")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	hazard, _ := ecs.GetComponent[*components.HazardComponent](em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

	// x = 0.5 * (800 - 40)
	if pos.X != 380 {
		t.Errorf("x = %v, want 380", pos.X)
	}
	if pos.Y != cfg.Hazard.SpawnY {
		t.Errorf("y = %v, want %v", pos.Y, cfg.Hazard.SpawnY)
	}
	if diff := hazard.Speed - 3; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("speed = %v, want 3", hazard.Speed)
	}
	if col.Radius != cfg.Hazard.Radius {
		t.Errorf("radius = %v, want %v", col.Radius, cfg.Hazard.Radius)
	}
}

func TestHazardSpawnSystem_NarrowPlayfield(t *testing.T) {
	em, system, cfg := newTestSpawnSystem(&fixedRandom{values: []float64{0.9}})
	cfg.Playfield.Width = 10 // 小于火球直径

	id, spawned := system.Update(5000, 0)
	if !spawned {
		t.Fatal("Expected a hazard to spawn")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 0 {
		t.Errorf("x = %v, want 0 on a playfield narrower than a hazard", pos.X)
	}
}

func TestHazardSpawnSystem_Reset(t *testing.T) {
	_, system, _ := newTestSpawnSystem(&fixedRandom{})

	system.Update(100000, 90)
	if system.SpawnInterval() != 300 {
		t.Fatalf("SpawnInterval = %v, want floor 300", system.SpawnInterval())
	}

	system.Reset()
	if system.LastSpawnTime() != 0 {
		t.Errorf("LastSpawnTime after Reset = %v, want 0", system.LastSpawnTime())
	}
	if system.SpawnInterval() != 1500 {
		t.Errorf("SpawnInterval after Reset = %v, want 1500", system.SpawnInterval())
	}
}
