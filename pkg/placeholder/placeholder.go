// Package placeholder 提供占位图生成器
//
// 占位图是一个纯色背景加居中白色文字的简单图形，
// 在资源缺失或需要快速原型时充当真实图片的替身。
// 生成器是纯函数：给定相同输入，输出完全确定，无副作用。
//
// 两种输出形式：
//   - SVG(): 矢量图形文档，不依赖图形上下文，可在任意环境生成
//   - Image(): 栅格化的 *ebiten.Image，需要 Ebitengine 图形上下文
package placeholder

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// 所有输入都有安全默认值，不存在错误路径
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	// DefaultColor 十六进制颜色字符串，不带 # 前缀
	DefaultColor = "3498db"
	DefaultText  = "Image"
)

// RefPrefix 占位图资源引用的前缀
// 完整格式: "placeholder:<hex颜色>:<文字>:<宽>x<高>"，后三段均可省略
const RefPrefix = "placeholder:"

// Options 占位图参数
// 零值字段解析为默认值：800x600、"3498db"、"Image"
type Options struct {
	Width  int
	Height int
	// Color 十六进制颜色字符串（无 # 前缀）
	// 不做校验：SVG 输出原样传递给查看器，栅格化时非法值回退默认色
	Color string
	Text  string
}

// withDefaults 返回填充了默认值的副本
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.Text == "" {
		o.Text = DefaultText
	}
	return o
}

// SVG 生成占位图的 SVG 文档
//
// 输出的声明宽高严格等于解析后的输入，背景为纯色矩形，
// 文字白色居中，字号随短边缩放。颜色字符串不做解释，
// 非法颜色由 SVG 查看器自行处理。
func SVG(opts Options) []byte {
	o := opts.withDefaults()

	// 字号随短边缩放，保证文字在任意比例下可读
	fontSize := minInt(o.Width, o.Height) / 6
	if fontSize < 1 {
		fontSize = 1
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		o.Width, o.Height, o.Width, o.Height)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="#%s"/>`,
		o.Width, o.Height, escapeAttr(o.Color))
	fmt.Fprintf(&buf,
		`<text x="50%%" y="50%%" fill="#ffffff" font-family="sans-serif" font-size="%d" text-anchor="middle" dominant-baseline="middle">%s</text>`,
		fontSize, escapeText(o.Text))
	buf.WriteString(`</svg>`)
	return buf.Bytes()
}

// FromRef 解析占位图资源引用
//
// 引用格式: "placeholder:<hex颜色>:<文字>:<宽>x<高>"
// 例如 "placeholder:e74c3c:Go:96x72"。颜色、文字、尺寸段都可以为空
// 或省略，省略的段使用默认值。
//
// 返回解析出的参数；若 ref 不带 placeholder: 前缀则返回 false。
func FromRef(ref string) (Options, bool) {
	if !strings.HasPrefix(ref, RefPrefix) {
		return Options{}, false
	}

	var opts Options
	parts := strings.SplitN(strings.TrimPrefix(ref, RefPrefix), ":", 3)
	if len(parts) > 0 {
		opts.Color = parts[0]
	}
	if len(parts) > 1 {
		opts.Text = parts[1]
	}
	if len(parts) > 2 {
		opts.Width, opts.Height = parseSize(parts[2])
	}
	return opts, true
}

// parseSize 解析 "<宽>x<高>" 尺寸段，格式非法时返回零值（即默认尺寸）
func parseSize(s string) (w, h int) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return w, h
}

// escapeText 对 SVG 文本内容做 XML 转义
func escapeText(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// escapeAttr 对属性值做 XML 转义（不解释内容，仅保证文档合法）
func escapeAttr(s string) string {
	return escapeText(s)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
