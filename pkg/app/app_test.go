package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/firedodge/pkg/game"
	"github.com/decker502/firedodge/pkg/scenes"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestNewApp(t *testing.T) {
	path := writeConfig(t, "playfield:\n  width: 640\n  height: 480\n")

	a, err := NewApp(Config{Verbose: true, ConfigPath: path, Seed: 42})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if w, h := a.Layout(1920, 1080); w != 640 || h != 480 {
		t.Errorf("Layout() = %dx%d, want 640x480", w, h)
	}
	if _, ok := a.sceneManager.GetCurrentScene().(*scenes.StartScene); !ok {
		t.Error("Expected the start screen as the first scene")
	}
}

func TestNewApp_SkipStartScreen(t *testing.T) {
	path := writeConfig(t, "")

	a, err := NewApp(Config{Verbose: true, ConfigPath: path, SkipStartScreen: true})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	scene, ok := a.sceneManager.GetCurrentScene().(*scenes.GameScene)
	if !ok {
		t.Fatal("Expected a game scene when skipping the start screen")
	}
	if scene.Session().State() != game.SessionNotStarted {
		t.Error("Session should wait for the first Update")
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "levels:\n  - name: first\n    minScore: 5\n")

	if _, err := NewApp(Config{Verbose: true, ConfigPath: path}); err == nil {
		t.Error("Expected error for invalid level table")
	}
	if _, err := NewApp(Config{Verbose: true, ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestApp_Clock(t *testing.T) {
	path := writeConfig(t, "")
	a, err := NewApp(Config{Verbose: true, ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	base := time.Unix(1000, 0)
	a.startedAt = base
	a.now = func() time.Time { return base.Add(1500 * time.Millisecond) }

	if got := a.Clock(); got != 1500 {
		t.Errorf("Clock() = %v, want 1500", got)
	}
}
