package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/entities"
	"github.com/decker502/firedodge/pkg/game"
	"github.com/decker502/firedodge/pkg/systems"
	"github.com/decker502/firedodge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameScene 游戏进行中的场景
//
// 每个 GameScene 拥有一个独立的 game.Session；重新开始时通过场景工厂
// 创建新的 GameScene，旧会话随场景一起丢弃。
type GameScene struct {
	ctx     *Context
	session *game.Session
	hud     *HUD
	face    text.Face

	inputSystem  *systems.InputSystem
	renderSystem *systems.RenderSystem

	leftButton    *components.Button
	rightButton   *components.Button
	restartButton *components.Button

	started          bool
	restartRequested bool
}

// NewGameScene 创建游戏场景和新的会话
// 会话在场景第一次 Update 时开始计时
func NewGameScene(ctx *Context) (*GameScene, error) {
	cfg := ctx.Config
	w, h := cfg.Playfield.Width, cfg.Playfield.Height

	face := utils.DefaultFace()
	hud := NewHUD(face)

	leftButton := components.NewButton(config.LeftButtonRect(w, h), "<")
	rightButton := components.NewButton(config.RightButtonRect(w, h), ">")
	inputSystem := systems.NewInputSystem(leftButton, rightButton)

	var loader entities.ResourceLoader
	if ctx.ResourceManager != nil {
		loader = ctx.ResourceManager
	}
	rng := ctx.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	session, err := game.NewSession(cfg, loader, rng, inputSystem, hud)
	if err != nil {
		log.Printf("[GameScene] ERROR: failed to create session: %v", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &GameScene{
		ctx:           ctx,
		session:       session,
		hud:           hud,
		face:          face,
		inputSystem:   inputSystem,
		renderSystem:  systems.NewRenderSystem(session.EntityManager()),
		leftButton:    leftButton,
		rightButton:   rightButton,
		restartButton: components.NewButton(config.CenterButtonRect(w, h), "RESTART"),
	}, nil
}

// Session 返回场景持有的会话
func (s *GameScene) Session() *game.Session {
	return s.session
}

// Update 推进会话；结束后等待重新开始
func (s *GameScene) Update(now float64) {
	s.hud.Tick(now)

	if !s.started {
		s.session.Start(now)
		s.started = true
	}

	if s.session.IsRunning() {
		s.session.Update(now)
		return
	}

	// 请求过重新开始却仍在更新，说明场景管理器没能创建新场景，允许再次请求
	if s.restartRequested {
		log.Printf("[GameScene] WARNING: restart did not switch scenes, keeping the current one")
		s.restartRequested = false
	}
	if s.session.State() != game.SessionGameOver {
		return
	}
	if updateTapButton(s.restartButton) || utils.IsConfirmKeyJustPressed() {
		log.Printf("[GameScene] Restart requested")
		s.restartRequested = true
		s.ctx.SceneManager.RequestScene(game.ScenePlay)
	}
}

// Draw 绘制场地、界面和按钮
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.session.IsRunning() {
		drawButton(screen, s.face, s.leftButton)
		drawButton(screen, s.face, s.rightButton)
	}

	s.hud.Draw(screen)

	if s.hud.IsGameOver() {
		drawButton(screen, s.face, s.restartButton)
	}

	if s.ctx.Verbose {
		x, y := s.session.PlayerPosition()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f  hazards: %d  interval: %.0fms  player: (%.0f, %.0f)",
			ebiten.ActualTPS(), s.session.HazardCount(), s.session.SpawnInterval(), x, y),
			int(config.HUDMarginX), screen.Bounds().Dy()-20)
	}
}
