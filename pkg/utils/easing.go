package utils

import "math"

// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress 返回从 start 起经过 duration 的进度，限制在 [0, 1]
// 时间单位由调用方决定（游戏内统一为毫秒）；duration 不为正时直接返回 1
func Progress(start, now, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	t := (now - start) / duration
	return math.Max(0, math.Min(1, t))
}
