package systems

import (
	"log"

	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/ecs"
	"github.com/decker502/firedodge/pkg/entities"
)

// RandomSource 生成 [0, 1) 均匀分布随机数
// *rand.Rand 满足该接口，测试中可注入固定序列
type RandomSource interface {
	Float64() float64
}

// HazardSpawnSystem 管理火球的定时生成
// 间隔随存活时间缩短（见 DifficultyEngine），到达下限后保持不变
type HazardSpawnSystem struct {
	entityManager  *ecs.EntityManager
	resourceLoader entities.ResourceLoader
	cfg            *config.GameConfig
	difficulty     *DifficultyEngine
	rng            RandomSource
	lastSpawnTime  float64 // 上次生成的时间戳（毫秒）
	spawnInterval  float64 // 当前生成间隔（毫秒）
}

// NewHazardSpawnSystem 创建火球生成系统
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器（火球精灵图），可为 nil
//   - cfg: 游戏配置
//   - difficulty: 难度引擎
//   - rng: 随机数源，决定生成的水平位置
func NewHazardSpawnSystem(em *ecs.EntityManager, rl entities.ResourceLoader, cfg *config.GameConfig, difficulty *DifficultyEngine, rng RandomSource) *HazardSpawnSystem {
	s := &HazardSpawnSystem{
		entityManager:  em,
		resourceLoader: rl,
		cfg:            cfg,
		difficulty:     difficulty,
		rng:            rng,
	}
	s.Reset()
	return s
}

// Reset 重置生成计时器和间隔（开局时调用）
func (s *HazardSpawnSystem) Reset() {
	s.lastSpawnTime = 0
	s.spawnInterval = s.difficulty.InitialSpawnInterval()
}

// SpawnInterval 返回当前生成间隔（毫秒）
func (s *HazardSpawnSystem) SpawnInterval() float64 {
	return s.spawnInterval
}

// LastSpawnTime 返回上次生成的时间戳（毫秒）
func (s *HazardSpawnSystem) LastSpawnTime() float64 {
	return s.lastSpawnTime
}

// Update 检查是否到达生成时间，到达时生成一个火球
//
// 距上次生成超过当前间隔（严格大于）时生成，随后记录时间戳并按存活时间重新计算间隔。
//
// 参数:
//   - currentTime: 当前帧时间戳（毫秒）
//   - survivalTime: 当前存活秒数
//
// 返回:
//   - ecs.EntityID: 新火球的实体ID
//   - bool: 本帧是否生成了火球
func (s *HazardSpawnSystem) Update(currentTime float64, survivalTime int) (ecs.EntityID, bool) {
	if currentTime-s.lastSpawnTime <= s.spawnInterval {
		return 0, false
	}

	id, ok := s.spawn(survivalTime)
	s.lastSpawnTime = currentTime
	s.spawnInterval = s.difficulty.SpawnInterval(survivalTime)
	return id, ok
}

// spawn 在场地顶部上方的随机水平位置生成火球
// 水平位置均匀分布在 [0, 场地宽度 - 火球直径)，场地过窄时固定为 0
func (s *HazardSpawnSystem) spawn(survivalTime int) (ecs.EntityID, bool) {
	span := s.cfg.Playfield.Width - 2*s.cfg.Hazard.Radius
	if span < 0 {
		span = 0
	}
	x := s.rng.Float64() * span
	speed := s.difficulty.HazardSpeed(survivalTime)

	id, err := entities.NewHazardEntity(s.entityManager, s.resourceLoader, x, s.cfg.Hazard.SpawnY, speed, s.cfg)
	if err != nil {
		log.Printf("[HazardSpawnSystem] ERROR: failed to spawn hazard: %v", err)
		return 0, false
	}
	return id, true
}
