package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/decker502/firedodge/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 默认的内嵌游戏配置路径
const DefaultGameConfigPath = "data/game.yaml"

// GameConfig 游戏整体配置
// 包含场地尺寸、玩家与火球参数、难度曲线和等级表
type GameConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`  // 场地尺寸
	Player     PlayerConfig     `yaml:"player"`     // 玩家参数
	Hazard     HazardConfig     `yaml:"hazard"`     // 火球参数
	Difficulty DifficultyConfig `yaml:"difficulty"` // 难度曲线
	Collision  CollisionConfig  `yaml:"collision"`  // 碰撞判定
	Scoring    ScoringConfig    `yaml:"scoring"`    // 计分规则
	Levels     []LevelConfig    `yaml:"levels"`     // 等级表（按最低分升序）
}

// PlayfieldConfig 场地尺寸（像素）
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Radius       float64 `yaml:"radius"`       // 碰撞半径
	Speed        float64 `yaml:"speed"`        // 每帧水平移动距离
	BottomOffset float64 `yaml:"bottomOffset"` // 初始位置距场地底部的距离
	Image        string  `yaml:"image"`        // 精灵图路径，加载失败时使用程序化图形
}

// HazardConfig 火球参数
type HazardConfig struct {
	Radius float64 `yaml:"radius"` // 碰撞半径
	SpawnY float64 `yaml:"spawnY"` // 生成时的Y坐标（通常在场地上方）
	Image  string  `yaml:"image"`  // 精灵图路径
}

// DifficultyConfig 难度曲线参数
// 生成间隔单位为毫秒，速度单位为像素/帧
type DifficultyConfig struct {
	InitialSpawnInterval float64 `yaml:"initialSpawnInterval"` // 初始生成间隔
	SpawnIntervalDecay   float64 `yaml:"spawnIntervalDecay"`   // 每存活一秒缩短的间隔
	MinSpawnInterval     float64 `yaml:"minSpawnInterval"`     // 生成间隔下限
	BaseSpeed            float64 `yaml:"baseSpeed"`            // 初始下落速度
	SpeedGrowth          float64 `yaml:"speedGrowth"`          // 每存活一秒增加的速度
}

// CollisionConfig 碰撞判定参数
type CollisionConfig struct {
	// OverlapTolerance 允许的视觉重叠量，半径之和减去该值后才判定命中
	OverlapTolerance float64 `yaml:"overlapTolerance"`
}

// ScoringConfig 计分规则
type ScoringConfig struct {
	PointsPerSecond float64 `yaml:"pointsPerSecond"` // 每秒得分，score = floor(elapsed * PointsPerSecond)
}

// LevelConfig 等级（称号）配置
type LevelConfig struct {
	Name     string `yaml:"name"`     // 等级名称
	MinScore int    `yaml:"minScore"` // 达到该等级所需的最低分数
}

// DefaultLevels 返回默认等级表
func DefaultLevels() []LevelConfig {
	return []LevelConfig{
		{Name: "Fire Dodging Rookie", MinScore: 0},
		{Name: "Skilled Fire Dodger", MinScore: 100},
		{Name: "Fire Dodging Expert", MinScore: 300},
		{Name: "Fire Dodging Master", MinScore: 500},
		{Name: "Legend of the Flames", MinScore: 1000},
	}
}

// DefaultGameConfig 返回默认配置（与 data/game.yaml 保持一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Playfield: PlayfieldConfig{Width: GameWindowWidth, Height: GameWindowHeight},
		Player: PlayerConfig{
			Radius:       25,
			Speed:        5,
			BottomOffset: 80,
			Image:        "assets/images/player.png",
		},
		Hazard: HazardConfig{
			Radius: 20,
			SpawnY: -40,
			Image:  "assets/images/hazard.png",
		},
		Difficulty: DifficultyConfig{
			InitialSpawnInterval: 1500,
			SpawnIntervalDecay:   20,
			MinSpawnInterval:     300,
			BaseSpeed:            2,
			SpeedGrowth:          0.1,
		},
		Collision: CollisionConfig{OverlapTolerance: 10},
		Scoring:   ScoringConfig{PointsPerSecond: 10},
		Levels:    DefaultLevels(),
	}
}

// LoadGameConfig 加载游戏配置
// 以 "data/" 开头且内嵌资源已初始化时从内嵌文件系统读取，否则从磁盘读取
//
// 参数：
//
//	path - 配置文件路径
//
// 返回：
//
//	*GameConfig - 解析并校验后的配置
//	error - 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 从 YAML 数据解析游戏配置
// YAML 覆盖在默认配置之上：未写出的字段保持默认值，显式写出的 0 原样保留
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") && embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// validateGameConfig 验证配置的合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Playfield.Width <= 0 || cfg.Playfield.Height <= 0 {
		return fmt.Errorf("playfield size must be positive, got %.0fx%.0f", cfg.Playfield.Width, cfg.Playfield.Height)
	}

	if cfg.Player.Radius <= 0 {
		return fmt.Errorf("player.radius must be > 0, got %v", cfg.Player.Radius)
	}
	if cfg.Player.Speed < 0 {
		return fmt.Errorf("player.speed must be >= 0, got %v", cfg.Player.Speed)
	}
	if cfg.Hazard.Radius <= 0 {
		return fmt.Errorf("hazard.radius must be > 0, got %v", cfg.Hazard.Radius)
	}

	d := cfg.Difficulty
	if d.MinSpawnInterval <= 0 {
		return fmt.Errorf("difficulty.minSpawnInterval must be > 0, got %v", d.MinSpawnInterval)
	}
	if d.InitialSpawnInterval < d.MinSpawnInterval {
		return fmt.Errorf("difficulty.initialSpawnInterval (%v) must be >= minSpawnInterval (%v)",
			d.InitialSpawnInterval, d.MinSpawnInterval)
	}
	if d.SpawnIntervalDecay < 0 {
		return fmt.Errorf("difficulty.spawnIntervalDecay must be >= 0, got %v", d.SpawnIntervalDecay)
	}
	if d.BaseSpeed < 0 || d.SpeedGrowth < 0 {
		return fmt.Errorf("difficulty speeds must be >= 0, got base=%v growth=%v", d.BaseSpeed, d.SpeedGrowth)
	}

	if cfg.Collision.OverlapTolerance < 0 {
		return fmt.Errorf("collision.overlapTolerance must be >= 0, got %v", cfg.Collision.OverlapTolerance)
	}
	if cfg.Scoring.PointsPerSecond <= 0 {
		return fmt.Errorf("scoring.pointsPerSecond must be > 0, got %v", cfg.Scoring.PointsPerSecond)
	}

	return validateLevels(cfg.Levels)
}

// validateLevels 等级表必须非空、首项最低分为 0、最低分严格递增
// 保证任意分数都能找到当前等级
func validateLevels(levels []LevelConfig) error {
	if len(levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	if levels[0].MinScore != 0 {
		return fmt.Errorf("levels[0].minScore must be 0, got %d", levels[0].MinScore)
	}
	for i, level := range levels {
		if level.Name == "" {
			return fmt.Errorf("levels[%d]: name is required", i)
		}
		if i > 0 && level.MinScore <= levels[i-1].MinScore {
			return fmt.Errorf("levels[%d]: minScore %d must be greater than previous %d",
				i, level.MinScore, levels[i-1].MinScore)
		}
	}
	return nil
}
