// placeholder 生成占位图 SVG 并输出到标准输出或文件
//
// 用法:
//
//	go run ./cmd/placeholder -width 400 -height 300 -color e74c3c -text "Hello" -o out.svg
//
// 不带参数时使用默认值（800x600, 3498db, "Image"）。
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/banner/pkg/placeholder"
)

var (
	width  = flag.Int("width", placeholder.DefaultWidth, "图片宽度（像素）")
	height = flag.Int("height", placeholder.DefaultHeight, "图片高度（像素）")
	col    = flag.String("color", placeholder.DefaultColor, "背景色（十六进制，不带 #）")
	text   = flag.String("text", placeholder.DefaultText, "居中显示的文字")
	output = flag.String("o", "", "输出文件，为空输出到标准输出")
)

func main() {
	flag.Parse()

	svg := placeholder.SVG(placeholder.Options{
		Width:  *width,
		Height: *height,
		Color:  *col,
		Text:   *text,
	})

	if *output == "" {
		if _, err := os.Stdout.Write(svg); err != nil {
			log.Fatalf("写入标准输出失败: %v", err)
		}
		return
	}

	if err := os.WriteFile(*output, svg, 0o644); err != nil {
		log.Fatalf("写入 %s 失败: %v", *output, err)
	}
	log.Printf("[Placeholder] 已生成 %s (%dx%d)", *output, *width, *height)
}
