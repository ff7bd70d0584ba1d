package systems

import (
	"testing"

	"github.com/decker502/firedodge/pkg/config"
)

func TestLevelSystem_CurrentAndNext(t *testing.T) {
	system := NewLevelSystem(config.DefaultLevels())

	tests := []struct {
		name        string
		score       int
		wantCurrent int // MinScore of current level
		wantNext    int // MinScore of next level
		wantHasNext bool
	}{
		{"零分", 0, 0, 100, true},
		{"刚好达到100", 100, 100, 300, true},
		{"99分", 99, 0, 100, true},
		{"450分", 450, 300, 500, true},
		{"999分", 999, 500, 1000, true},
		{"最高等级", 1000, 1000, 0, false},
		{"超过最高等级", 5000, 1000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := system.CurrentLevel(tt.score)
			if current.MinScore != tt.wantCurrent {
				t.Errorf("CurrentLevel(%d).MinScore = %d, want %d", tt.score, current.MinScore, tt.wantCurrent)
			}

			next, ok := system.NextLevel(tt.score)
			if ok != tt.wantHasNext {
				t.Fatalf("NextLevel(%d) ok = %v, want %v", tt.score, ok, tt.wantHasNext)
			}
			if ok && next.MinScore != tt.wantNext {
				t.Errorf("NextLevel(%d).MinScore = %d, want %d", tt.score, next.MinScore, tt.wantNext)
			}
		})
	}
}

func TestLevelSystem_Names(t *testing.T) {
	system := NewLevelSystem(config.DefaultLevels())

	if got := system.CurrentLevel(450).Name; got != "Fire Dodging Expert" {
		t.Errorf("CurrentLevel(450).Name = %q, want %q", got, "Fire Dodging Expert")
	}
	next, _ := system.NextLevel(450)
	if next.Name != "Fire Dodging Master" {
		t.Errorf("NextLevel(450).Name = %q, want %q", next.Name, "Fire Dodging Master")
	}
}

func TestLevelSystem_EmptyTable(t *testing.T) {
	system := NewLevelSystem(nil)

	if got := system.CurrentLevel(10); got.Name != "" {
		t.Errorf("Expected zero level for empty table, got %+v", got)
	}
	if _, ok := system.NextLevel(10); ok {
		t.Error("Expected no next level for empty table")
	}
}
