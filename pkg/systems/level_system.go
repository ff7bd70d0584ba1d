package systems

import "github.com/decker502/firedodge/pkg/config"

// LevelSystem 根据分数查找等级（称号）
// 等级表按最低分升序排列且首项为 0，任何分数都有对应等级
type LevelSystem struct {
	levels []config.LevelConfig
}

// NewLevelSystem 创建等级系统
// levels 必须已通过配置校验
func NewLevelSystem(levels []config.LevelConfig) *LevelSystem {
	return &LevelSystem{levels: levels}
}

// currentIndex 从表尾向前查找第一个 minScore <= score 的等级
func (s *LevelSystem) currentIndex(score int) int {
	for i := len(s.levels) - 1; i >= 0; i-- {
		if score >= s.levels[i].MinScore {
			return i
		}
	}
	return 0
}

// CurrentLevel 返回分数对应的当前等级
// 负分（不会出现）同样回退到第一个等级
func (s *LevelSystem) CurrentLevel(score int) config.LevelConfig {
	if len(s.levels) == 0 {
		return config.LevelConfig{}
	}
	return s.levels[s.currentIndex(score)]
}

// NextLevel 返回当前等级之后的下一个等级
// 已达到最高等级时 ok 为 false
func (s *LevelSystem) NextLevel(score int) (level config.LevelConfig, ok bool) {
	if len(s.levels) == 0 {
		return config.LevelConfig{}, false
	}
	next := s.currentIndex(score) + 1
	if next >= len(s.levels) {
		return config.LevelConfig{}, false
	}
	return s.levels[next], true
}
