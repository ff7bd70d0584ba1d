package components

// CollisionComponent 定义实体的圆形碰撞范围
// 圆心与 PositionComponent 重合，用于玩家与火球的命中判定
type CollisionComponent struct {
	Radius float64 // 碰撞半径（像素）
}
