package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	now          float64
}

// Update records that Update was called and stores the clock value.
func (m *MockScene) Update(now float64) {
	m.updateCalled = true
	m.now = now
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update forwards the clock to the current scene.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(1234.5)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.now != 1234.5 {
		t.Errorf("Expected now 1234.5, got %.1f", mockScene.now)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(16) // Should not panic
	sm.Draw(ebiten.NewImage(10, 10))
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(800, 600))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerLoadScene verifies that LoadScene builds scenes through the factory.
func TestSceneManagerLoadScene(t *testing.T) {
	sm := NewSceneManager()

	// 未设置工厂时不切换
	sm.LoadScene(ScenePlay)
	if sm.GetCurrentScene() != nil {
		t.Fatal("LoadScene without a factory should not set a scene")
	}

	created := make(map[string]int)
	sm.SetSceneFactory(func(sceneID string) Scene {
		created[sceneID]++
		if sceneID == "unknown" {
			return nil
		}
		return &MockScene{}
	})

	sm.LoadScene(ScenePlay)
	first := sm.GetCurrentScene()
	if first == nil {
		t.Fatal("Expected a scene after LoadScene")
	}

	// 重新开始：每次都创建新实例
	sm.LoadScene(ScenePlay)
	if sm.GetCurrentScene() == first {
		t.Error("LoadScene should replace the scene with a fresh instance")
	}
	if created[ScenePlay] != 2 {
		t.Errorf("Expected factory to be called twice, got %d", created[ScenePlay])
	}

	// 工厂返回 nil 时保留当前场景
	current := sm.GetCurrentScene()
	sm.LoadScene("unknown")
	if sm.GetCurrentScene() != current {
		t.Error("A nil scene from the factory should keep the current scene")
	}
}

// TestSceneManagerRequestScene verifies that requested scenes are swapped in on the next Update.
func TestSceneManagerRequestScene(t *testing.T) {
	sm := NewSceneManager()
	oldScene := &MockScene{}
	newScene := &MockScene{}
	sm.SwitchTo(oldScene)
	sm.SetSceneFactory(func(sceneID string) Scene { return newScene })

	sm.RequestScene(ScenePlay)
	if sm.GetCurrentScene() != oldScene {
		t.Fatal("RequestScene should not switch immediately")
	}

	sm.Update(100)
	if sm.GetCurrentScene() != newScene {
		t.Fatal("Requested scene was not loaded on Update")
	}
	if oldScene.updateCalled {
		t.Error("Old scene should not be updated after the switch")
	}
	if !newScene.updateCalled {
		t.Error("New scene should be updated in the same frame")
	}
}
