package utils

import "image"

// PointInRect 检查点 (x, y) 是否落在矩形内
// 用于容器边界判定和点击命中检测
func PointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
