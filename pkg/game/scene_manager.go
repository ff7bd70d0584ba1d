package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按ID创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(sceneID string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
	pendingScene string       // 下一帧开始时切换到的场景ID
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
// 如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadScene 通过工厂创建并立即切换到指定场景
// sceneID: SceneStart 或 ScenePlay
func (sm *SceneManager) LoadScene(sceneID string) {
	log.Printf("[SceneManager] Loading scene: %s", sceneID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] ERROR: SceneFactory not set")
		return
	}

	newScene := sm.sceneFactory(sceneID)
	if newScene == nil {
		log.Printf("[SceneManager] ERROR: failed to create scene: %s", sceneID)
		return
	}
	sm.SwitchTo(newScene)
}

// RequestScene 请求在下一次 Update 开始时切换场景
// 场景在自己的 Update 中请求切换时使用，避免在回调中替换自身
func (sm *SceneManager) RequestScene(sceneID string) {
	sm.pendingScene = sceneID
}

// Update updates the currently active scene.
// A scene requested via RequestScene is loaded first.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(now float64) {
	if sm.pendingScene != "" {
		sceneID := sm.pendingScene
		sm.pendingScene = ""
		sm.LoadScene(sceneID)
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(now)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
