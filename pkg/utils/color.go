package utils

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 解析十六进制颜色字符串（可带可不带 # 前缀）
// 支持 "rgb" 和 "rrggbb" 两种形式
// 解析失败时返回 false，由调用方决定回退策略
func ParseHexColor(s string) (color.RGBA, bool) {
	hex := strings.TrimPrefix(s, "#")

	// go-colorful 只接受 #rgb / #rrggbb 形式
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, false
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
}
