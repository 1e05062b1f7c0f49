package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/banner/pkg/app"
	"github.com/gonewx/banner/pkg/config"
	"github.com/gonewx/banner/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	scene := flag.String("scene", "", "start scene: menu or banner (default menu)")
	flag.Parse()

	// 初始化嵌入资源
	// assetsFS 在 embed.go 中声明
	embedded.Init(assetsFS)

	bannerApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Scene:      *scene,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(bannerApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(bannerApp); err != nil {
		log.Fatal(err)
	}
}
