package components

// PlayerComponent 标记玩家实体并保存移动参数
// 初始坐标用于重新开始时复位
type PlayerComponent struct {
	Speed    float64 // 每帧水平移动距离（像素）
	InitialX float64 // 初始X坐标
	InitialY float64 // 初始Y坐标
}
