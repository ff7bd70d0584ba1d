package config

// 布局配置常量
// 本文件定义了窗口尺寸和界面元素的位置，场地内的游戏参数见 game_config.go

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 是游戏逻辑画面宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 是游戏逻辑画面高度（像素）
	GameWindowHeight = 600

	// WindowTitle 是窗口标题
	WindowTitle = "Fire Dodge"
)

// HUD Configuration (分数/时间显示)
const (
	HUDMarginX   = 16.0
	HUDMarginY   = 12.0
	HUDLineSpace = 18.0
)

// Touch Button Configuration (屏幕左右按钮)
// 按钮位于画面底部两侧，按住即持续移动
const (
	// TouchButtonSize 按钮边长（正方形）
	TouchButtonSize = 72.0

	// TouchButtonMargin 按钮与画面边缘的距离
	TouchButtonMargin = 16.0
)

// Rect 轴对齐矩形（屏幕坐标）
type Rect struct {
	X, Y, Width, Height float64
}

// Contains 检查点是否落在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// LeftButtonRect 返回左移按钮区域
func LeftButtonRect(screenWidth, screenHeight float64) Rect {
	return Rect{
		X:      TouchButtonMargin,
		Y:      screenHeight - TouchButtonMargin - TouchButtonSize,
		Width:  TouchButtonSize,
		Height: TouchButtonSize,
	}
}

// RightButtonRect 返回右移按钮区域
func RightButtonRect(screenWidth, screenHeight float64) Rect {
	return Rect{
		X:      screenWidth - TouchButtonMargin - TouchButtonSize,
		Y:      screenHeight - TouchButtonMargin - TouchButtonSize,
		Width:  TouchButtonSize,
		Height: TouchButtonSize,
	}
}

// CenterButtonRect 返回开始/重新开始按钮区域（画面中央偏下）
func CenterButtonRect(screenWidth, screenHeight float64) Rect {
	const w, h = 200.0, 48.0
	return Rect{
		X:      (screenWidth - w) / 2,
		Y:      screenHeight*0.65 - h/2,
		Width:  w,
		Height: h,
	}
}
