package systems

import (
	"math"

	"github.com/decker502/firedodge/pkg/config"
)

// DifficultyEngine 难度引擎
// 生成间隔和火球速度都只取决于存活秒数，同样的存活时间总是得到同样的难度
type DifficultyEngine struct {
	cfg config.DifficultyConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(cfg config.DifficultyConfig) *DifficultyEngine {
	return &DifficultyEngine{cfg: cfg}
}

// SpawnInterval 计算生成间隔（毫秒）
// 公式: max(MinSpawnInterval, InitialSpawnInterval - survivalTime * SpawnIntervalDecay)
// 例如默认配置下存活 60 秒: max(300, 1500 - 1200) = 300
func (d *DifficultyEngine) SpawnInterval(survivalTime int) float64 {
	interval := d.cfg.InitialSpawnInterval - float64(survivalTime)*d.cfg.SpawnIntervalDecay
	return math.Max(d.cfg.MinSpawnInterval, interval)
}

// HazardSpeed 计算新生成火球的下落速度（像素/帧）
// 公式: BaseSpeed + survivalTime * SpeedGrowth
func (d *DifficultyEngine) HazardSpeed(survivalTime int) float64 {
	return d.cfg.BaseSpeed + float64(survivalTime)*d.cfg.SpeedGrowth
}

// InitialSpawnInterval 返回开局时的生成间隔
func (d *DifficultyEngine) InitialSpawnInterval() float64 {
	return d.cfg.InitialSpawnInterval
}
