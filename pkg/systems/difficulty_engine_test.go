package systems

import (
	"testing"

	"github.com/decker502/firedodge/pkg/config"
)

func TestDifficultyEngine_SpawnInterval(t *testing.T) {
	engine := NewDifficultyEngine(config.DefaultGameConfig().Difficulty)

	tests := []struct {
		name         string
		survivalTime int
		expected     float64
	}{
		{"开局", 0, 1500},
		{"存活1秒", 1, 1480},
		{"存活30秒", 30, 900},
		{"刚好到达下限", 60, 300},
		{"超过下限", 120, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.SpawnInterval(tt.survivalTime); got != tt.expected {
				t.Errorf("SpawnInterval(%d) = %v, want %v", tt.survivalTime, got, tt.expected)
			}
		})
	}
}

func TestDifficultyEngine_SpawnIntervalMonotone(t *testing.T) {
	engine := NewDifficultyEngine(config.DefaultGameConfig().Difficulty)

	prev := engine.SpawnInterval(0)
	for s := 1; s <= 200; s++ {
		cur := engine.SpawnInterval(s)
		if cur > prev {
			t.Fatalf("SpawnInterval increased at t=%d: %v -> %v", s, prev, cur)
		}
		if cur < 300 {
			t.Fatalf("SpawnInterval(%d) = %v, below floor 300", s, cur)
		}
		prev = cur
	}
}

func TestDifficultyEngine_HazardSpeed(t *testing.T) {
	engine := NewDifficultyEngine(config.DefaultGameConfig().Difficulty)

	tests := []struct {
		survivalTime int
		expected     float64
	}{
		{0, 2},
		{10, 3},
		{100, 12},
	}

	for _, tt := range tests {
		got := engine.HazardSpeed(tt.survivalTime)
		if diff := got - tt.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("HazardSpeed(%d) = %v, want %v", tt.survivalTime, got, tt.expected)
		}
	}
}

func TestDifficultyEngine_InitialSpawnInterval(t *testing.T) {
	engine := NewDifficultyEngine(config.DifficultyConfig{InitialSpawnInterval: 1000, MinSpawnInterval: 200})
	if got := engine.InitialSpawnInterval(); got != 1000 {
		t.Errorf("InitialSpawnInterval() = %v, want 1000", got)
	}
}
