// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/game"
	"github.com/decker502/firedodge/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和画面调试信息
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空时使用内嵌的 data/game.yaml
	ConfigPath string
	// Seed 火球位置的随机种子，0 表示使用当前时间
	Seed int64
	// SkipStartScreen 跳过标题画面，直接开始游戏
	SkipStartScreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameConfig               *config.GameConfig
	startedAt                time.Time
	now                      func() time.Time
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内嵌配置时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultGameConfigPath
	}
	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded game config from %s (%d levels)", configPath, len(gameConfig.Levels))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	// 创建资源管理器并预加载精灵图，失败时使用程序化图形
	resourceManager := game.NewResourceManager()
	if err := resourceManager.Preload(gameConfig.Player.Image, gameConfig.Hazard.Image); err != nil {
		log.Printf("[App] Warning: sprite preload incomplete, fallback shapes will be used: %v", err)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(&scenes.Context{
		Config:          gameConfig,
		ResourceManager: resourceManager,
		SceneManager:    sceneManager,
		Rand:            rand.New(rand.NewSource(seed)),
		Verbose:         cfg.Verbose,
	}))

	if cfg.SkipStartScreen {
		log.Printf("[App] SkipStartScreen enabled, starting a session immediately")
		sceneManager.LoadScene(game.ScenePlay)
	} else {
		sceneManager.LoadScene(game.SceneStart)
	}

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
		startedAt:    time.Now(),
		now:          time.Now,
	}, nil
}

// Clock 返回自应用启动以来的毫秒数
// 所有场景和会话共用这一个时钟
func (a *App) Clock() float64 {
	return float64(a.now().Sub(a.startedAt)) / float64(time.Millisecond)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.Clock())
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即场地尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 返回场地尺寸（像素），用于窗口和逻辑屏幕
func (a *App) WindowSize() (int, int) {
	w, h := int(a.gameConfig.Playfield.Width), int(a.gameConfig.Playfield.Height)
	if w <= 0 || h <= 0 {
		return config.GameWindowWidth, config.GameWindowHeight
	}
	return w, h
}
