package components

// HazardComponent 标记下落的火球实体
// Speed 在生成时根据当前难度确定，之后不再变化
type HazardComponent struct {
	Speed float64 // 每帧下落距离（像素）
}
