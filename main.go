// main.go - Fire Dodge 桌面端 / WASM 入口
//
// 用法：
//
//	go run . [--verbose] [--config=path/to/game.yaml] [--seed=42] [--fullscreen] [--skip-start]
//
// 未指定 --config 时读取环境变量 FIREDODGE_CONFIG，仍为空则使用内嵌的 data/game.yaml。
package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/firedodge/pkg/app"
	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "详细日志和画面调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内嵌配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	fullscreen = flag.Bool("fullscreen", false, "全屏启动（F11 切换）")
	skipStart  = flag.Bool("skip-start", false, "跳过标题画面直接开始")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	path := *configPath
	if path == "" {
		path = os.Getenv("FIREDODGE_CONFIG")
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		ConfigPath:      path,
		Seed:            *seed,
		SkipStartScreen: *skipStart,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
