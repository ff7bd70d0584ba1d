package game

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/firedodge/pkg/components"
	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/ecs"
	"github.com/decker502/firedodge/pkg/entities"
	"github.com/decker502/firedodge/pkg/systems"
)

// SessionState 会话状态
type SessionState int

const (
	// SessionNotStarted 会话已创建但尚未开始
	SessionNotStarted SessionState = iota
	// SessionRunning 游戏进行中
	SessionRunning
	// SessionGameOver 玩家被火球击中，终止状态
	SessionGameOver
)

// String 返回状态名称
func (s SessionState) String() string {
	switch s {
	case SessionNotStarted:
		return "not-started"
	case SessionRunning:
		return "running"
	case SessionGameOver:
		return "game-over"
	}
	return "unknown"
}

// GameOverInfo 游戏结束时交给界面的结算信息
type GameOverInfo struct {
	FinalScore        int
	FinalSurvivalTime int                // 秒
	CurrentLevel      config.LevelConfig // 最终分数对应的等级
	NextLevel         config.LevelConfig // 仅在 HasNextLevel 为 true 时有效
	HasNextLevel      bool
}

// Lines 返回结算画面的文字，图形界面和终端界面共用
func (info GameOverInfo) Lines() []string {
	lines := []string{
		fmt.Sprintf("Final score: %d", info.FinalScore),
		fmt.Sprintf("Survived: %d seconds", info.FinalSurvivalTime),
		fmt.Sprintf("Current level: %s", info.CurrentLevel.Name),
	}
	if info.HasNextLevel {
		return append(lines, fmt.Sprintf("Next level: %s (%d points)", info.NextLevel.Name, info.NextLevel.MinScore))
	}
	return append(lines, "Top level reached!")
}

// UISink 接收会话状态变化的界面
type UISink interface {
	// UpdateHUD 每个运行中的帧调用一次
	UpdateHUD(score, survivalTime int)
	// ShowGameOver 游戏结束时调用一次
	ShowGameOver(info GameOverInfo)
}

// Session 一局游戏的控制器
//
// 持有玩家、火球、计分、生成计时和难度，
// 每帧由外部驱动调用 Update(now)，所有时间戳都来自同一个毫秒时钟。
type Session struct {
	cfg           *config.GameConfig
	entityManager *ecs.EntityManager
	input         systems.InputSource
	sink          UISink

	playerMovement *systems.PlayerMovementSystem
	hazardMovement *systems.HazardMovementSystem
	hazardSpawn    *systems.HazardSpawnSystem
	collision      *systems.CollisionSystem
	levels         *systems.LevelSystem

	playerID     ecs.EntityID
	state        SessionState
	startTime    float64 // 毫秒
	score        int
	survivalTime int // 秒
	gameOverInfo GameOverInfo
}

// NewSession 创建一局新游戏（未开始）
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - rl: 精灵图加载器，可为 nil（全部使用程序化图形）
//   - rng: 火球水平位置的随机数源
//   - input: 输入源，可为 nil（玩家不移动）
//   - sink: 界面回调，可为 nil
func NewSession(cfg *config.GameConfig, rl entities.ResourceLoader, rng systems.RandomSource, input systems.InputSource, sink UISink) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	em := ecs.NewEntityManager()
	playerID, err := entities.NewPlayerEntity(em, rl, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	difficulty := systems.NewDifficultyEngine(cfg.Difficulty)

	return &Session{
		cfg:            cfg,
		entityManager:  em,
		input:          input,
		sink:           sink,
		playerMovement: systems.NewPlayerMovementSystem(em),
		hazardMovement: systems.NewHazardMovementSystem(em),
		hazardSpawn:    systems.NewHazardSpawnSystem(em, rl, cfg, difficulty, rng),
		collision:      systems.NewCollisionSystem(em, cfg.Collision.OverlapTolerance),
		levels:         systems.NewLevelSystem(cfg.Levels),
		playerID:       playerID,
		state:          SessionNotStarted,
	}, nil
}

// Start 开始（或重新开始）一局
// 清空火球、复位玩家、重置计分和生成计时
func (s *Session) Start(now float64) {
	for _, id := range s.hazardMovement.Hazards() {
		s.entityManager.RemoveEntity(id)
	}
	s.playerMovement.Reset()
	s.hazardSpawn.Reset()

	s.score = 0
	s.survivalTime = 0
	s.startTime = now
	s.gameOverInfo = GameOverInfo{}
	s.state = SessionRunning

	log.Printf("[Session] Started at %.0fms", now)
}

// Update 推进一帧，只在运行状态下生效
//
// 顺序：计算存活时间和分数 → 移动玩家 → 按需生成火球 →
// 倒序推进火球（越界删除，命中则结束游戏并放弃本帧剩余火球）
func (s *Session) Update(now float64) {
	if s.state != SessionRunning {
		return
	}

	elapsed := (now - s.startTime) / 1000
	s.survivalTime = int(math.Floor(elapsed))
	s.score = int(math.Floor(elapsed * s.cfg.Scoring.PointsPerSecond))
	if s.sink != nil {
		s.sink.UpdateHUD(s.score, s.survivalTime)
	}

	var intents components.InputIntents
	if s.input != nil {
		intents = s.input.Poll()
	}
	s.playerMovement.Update(intents, s.cfg.Playfield.Width)

	s.hazardSpawn.Update(now, s.survivalTime)

	hazards := s.hazardMovement.Hazards()
	for i := len(hazards) - 1; i >= 0; i-- {
		id := hazards[i]
		y, ok := s.hazardMovement.Advance(id)
		if !ok {
			continue
		}

		if y > s.cfg.Playfield.Height {
			s.entityManager.RemoveEntity(id)
			continue
		}

		if s.collision.Collides(s.playerID, id) {
			s.endGame()
			return
		}
	}
}

// endGame 进入结束状态并通知界面
func (s *Session) endGame() {
	s.state = SessionGameOver

	next, hasNext := s.levels.NextLevel(s.score)
	s.gameOverInfo = GameOverInfo{
		FinalScore:        s.score,
		FinalSurvivalTime: s.survivalTime,
		CurrentLevel:      s.levels.CurrentLevel(s.score),
		NextLevel:         next,
		HasNextLevel:      hasNext,
	}

	log.Printf("[Session] Game over: score=%d, survival=%ds, level=%s",
		s.score, s.survivalTime, s.gameOverInfo.CurrentLevel.Name)

	if s.sink != nil {
		s.sink.ShowGameOver(s.gameOverInfo)
	}
}

// State 返回当前会话状态
func (s *Session) State() SessionState {
	return s.state
}

// IsRunning 游戏是否进行中
func (s *Session) IsRunning() bool {
	return s.state == SessionRunning
}

// Score 返回当前分数
func (s *Session) Score() int {
	return s.score
}

// SurvivalTime 返回当前存活秒数
func (s *Session) SurvivalTime() int {
	return s.survivalTime
}

// HazardCount 返回场上火球数量
func (s *Session) HazardCount() int {
	return len(s.hazardMovement.Hazards())
}

// SpawnInterval 返回当前火球生成间隔（毫秒）
func (s *Session) SpawnInterval() float64 {
	return s.hazardSpawn.SpawnInterval()
}

// PlayerPosition 返回玩家中心坐标
func (s *Session) PlayerPosition() (x, y float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// GameOverInfo 返回结算信息，仅在 SessionGameOver 状态下有效
func (s *Session) GameOverInfo() GameOverInfo {
	return s.gameOverInfo
}

// EntityManager 返回会话的实体管理器（供渲染系统使用）
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
