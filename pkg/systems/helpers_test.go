package systems

import (
	"github.com/decker502/firedodge/pkg/config"
	"github.com/decker502/firedodge/pkg/ecs"
)

// fixedRandom 按顺序循环返回预设的随机数
type fixedRandom struct {
	values []float64
	next   int
}

func (r *fixedRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// newTestSpawnSystem 创建使用默认配置、不加载图片的火球生成系统
func newTestSpawnSystem(rng RandomSource) (*ecs.EntityManager, *HazardSpawnSystem, *config.GameConfig) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	difficulty := NewDifficultyEngine(cfg.Difficulty)
	return em, NewHazardSpawnSystem(em, nil, cfg, difficulty, rng), cfg
}
