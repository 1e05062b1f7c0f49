package placeholder

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/banner/pkg/utils"
)

// Image 将占位图栅格化为 ebiten.Image
//
// 输出尺寸严格等于解析后的宽高。与 SVG 输出不同，栅格化路径
// 没有下游图形层可以传递颜色字符串，因此非法颜色在这里回退为默认色。
// face 为 nil 时只绘制背景（用于字体尚未加载的降级场景）。
//
// 需要 Ebitengine 图形上下文，应在游戏循环内调用。
func Image(opts Options, face *text.GoTextFace) *ebiten.Image {
	o := opts.withDefaults()

	img := ebiten.NewImage(o.Width, o.Height)

	bg, ok := utils.ParseHexColor(o.Color)
	if !ok {
		bg, _ = utils.ParseHexColor(DefaultColor)
	}
	img.Fill(bg)

	if face != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(o.Width)/2, float64(o.Height)/2)
		op.ColorScale.ScaleWithColor(color.White)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(img, o.Text, face, op)
	}

	return img
}
