// cmd/firedodge-tty/main.go
// Fire Dodge 终端版本：同一套会话逻辑，使用 tcell 绘制、beep 发声
//
// 用法：
//
//	go run ./cmd/firedodge-tty [--config=data/game.yaml] [--seed=42] [--log=firedodge.log]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/game"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", config.DefaultGameConfigPath, "游戏配置文件路径")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	logPath    = flag.String("log", "", "日志文件路径（终端被界面占用，日志只能写文件）")
)

// frameInterval 约 60 FPS，与图形版本的每帧移动距离一致
const frameInterval = 16 * time.Millisecond

// ttyGame 终端版游戏循环
type ttyGame struct {
	screen  tcell.Screen
	cfg     *config.GameConfig
	rng     *rand.Rand
	input   *keyHoldInput
	ui      *terminalUI
	sound   *hitSound
	session *game.Session
	started time.Time
	onTitle bool
}

func newTTYGame(screen tcell.Screen, cfg *config.GameConfig, rng *rand.Rand, sound *hitSound) *ttyGame {
	return &ttyGame{
		screen:  screen,
		cfg:     cfg,
		rng:     rng,
		input:   newKeyHoldInput(time.Now),
		ui:      newTerminalUI(screen, cfg),
		sound:   sound,
		started: time.Now(),
		onTitle: true,
	}
}

// clock 自启动以来的毫秒数
func (g *ttyGame) clock() float64 {
	return float64(time.Since(g.started)) / float64(time.Millisecond)
}

// newSession 丢弃旧会话，创建并开始新的一局
func (g *ttyGame) newSession() error {
	session, err := game.NewSession(g.cfg, nil, g.rng, g.input, g.ui)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	g.input.Release()
	g.ui.reset()
	g.session = session
	g.session.Start(g.clock())
	g.onTitle = false
	return nil
}

// handleEvent 处理终端事件，返回 false 表示退出
func (g *ttyGame) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true, nil
}

// handleKey 处理一次按键，r 仅在 key == tcell.KeyRune 时有效
func (g *ttyGame) handleKey(key tcell.Key, r rune) (bool, error) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, nil
	case tcell.KeyLeft:
		g.input.PressLeft()
	case tcell.KeyRight:
		g.input.PressRight()
	case tcell.KeyEnter:
		if g.onTitle || (g.session != nil && g.session.State() == game.SessionGameOver) {
			return true, g.newSession()
		}
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			g.input.PressLeft()
		case 'd', 'D':
			g.input.PressRight()
		case 'q':
			return false, nil
		}
	}
	return true, nil
}

// tick 推进一帧并绘制
func (g *ttyGame) tick() {
	if g.onTitle || g.session == nil {
		g.ui.drawTitle()
		return
	}

	wasRunning := g.session.IsRunning()
	g.session.Update(g.clock())
	if wasRunning && g.session.State() == game.SessionGameOver {
		g.sound.Play()
	}
	g.ui.draw(g.session)
}

func (g *ttyGame) run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			keepRunning, err := g.handleEvent(ev)
			if err != nil {
				return err
			}
			if !keepRunning {
				return nil
			}
		case <-ticker.C:
			g.tick()
		}
	}
}

// loadConfig 读取配置文件，默认路径不存在时使用内置默认值
func loadConfig(path string) (*config.GameConfig, error) {
	cfg, err := config.LoadGameConfig(path)
	if err == nil {
		return cfg, nil
	}
	if path == config.DefaultGameConfigPath {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			log.Printf("[Config] %s not found, using built-in defaults", path)
			return config.DefaultGameConfig(), nil
		}
	}
	return nil, err
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	sound := newHitSound()
	g := newTTYGame(screen, cfg, rand.New(rand.NewSource(s)), sound)

	runErr := g.run()

	sound.Close()
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
