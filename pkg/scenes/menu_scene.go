package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/banner/pkg/config"
	"github.com/gonewx/banner/pkg/game"
	"github.com/gonewx/banner/pkg/utils"
)

var menuBackground = color.RGBA{R: 0x0e, G: 0x13, B: 0x1b, A: 0xff}

// 预览图尺寸和间距
const (
	menuTileWidth  = 160.0
	menuTileHeight = 120.0
	menuTileGap    = 24.0
	menuTileY      = 240.0
)

// MenuScene 主菜单场景
// 展示横幅配置中图片列表的预览行，点击或触摸任意位置进入横幅场景
type MenuScene struct {
	resources    *game.ResourceManager
	settings     *game.SettingsManager
	sceneManager *game.SceneManager
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(resources *game.ResourceManager, settings *game.SettingsManager, sceneManager *game.SceneManager) *MenuScene {
	return &MenuScene{
		resources:    resources,
		settings:     settings,
		sceneManager: sceneManager,
	}
}

// Update 更新菜单逻辑
func (s *MenuScene) Update(deltaTime float64) {
	if s.sceneManager == nil {
		return
	}
	if pressed, _, _ := utils.IsPointerJustPressed(); pressed {
		s.sceneManager.LoadScene("banner")
	}
}

// Draw 渲染菜单
func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackground)

	cfg := s.resources.BannerConfig()

	s.drawCenteredText(screen, cfg.Title, config.TitleFontSize, 120)
	s.drawTiles(screen, cfg.Images)

	prompt := "Click or tap to start"
	if !s.settings.Settings().TrailEnabled {
		prompt = "Click or tap to start (trail disabled, press T to enable)"
	}
	s.drawCenteredText(screen, prompt, 18, 440)
}

// drawTiles 横向居中排列图片预览
func (s *MenuScene) drawTiles(screen *ebiten.Image, refs []string) {
	if len(refs) == 0 {
		return
	}

	totalWidth := float64(len(refs))*menuTileWidth + float64(len(refs)-1)*menuTileGap
	x := (config.WindowWidth - totalWidth) / 2

	for _, ref := range refs {
		img := s.resources.ImageByRef(ref)
		if img != nil {
			w := float64(img.Bounds().Dx())
			h := float64(img.Bounds().Dy())

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(menuTileWidth/w, menuTileHeight/h)
			op.GeoM.Translate(x, menuTileY)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
		}
		x += menuTileWidth + menuTileGap
	}
}

func (s *MenuScene) drawCenteredText(screen *ebiten.Image, str string, size, y float64) {
	face := s.resources.Face(size)
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.WindowWidth/2, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}
