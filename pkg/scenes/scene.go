package scenes

import (
	"math/rand"

	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Context 所有场景共享的依赖
type Context struct {
	Config          *config.GameConfig
	ResourceManager *game.ResourceManager
	SceneManager    *game.SceneManager
	Rand            *rand.Rand
	Verbose         bool // 显示调试信息
}

// NewSceneFactory 返回按ID创建场景的工厂
// ScenePlay 每次都创建全新的会话，重新开始即再次请求 ScenePlay
func NewSceneFactory(ctx *Context) game.SceneFactory {
	return func(sceneID string) game.Scene {
		switch sceneID {
		case game.SceneStart:
			return NewStartScene(ctx)
		case game.ScenePlay:
			scene, err := NewGameScene(ctx)
			if err != nil {
				return nil
			}
			return scene
		}
		return nil
	}
}
