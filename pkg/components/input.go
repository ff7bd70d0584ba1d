package components

// InputIntents 当前帧的移动意图
// 由输入源在帧边界写入，会话控制器每帧读取一次
type InputIntents struct {
	MoveLeft  bool // 按住左移（←、A 或左侧屏幕按钮）
	MoveRight bool // 按住右移（→、D 或右侧屏幕按钮）
}
