package components

// PositionComponent 存储实体中心点的屏幕坐标（像素）
type PositionComponent struct {
	X float64
	Y float64
}
