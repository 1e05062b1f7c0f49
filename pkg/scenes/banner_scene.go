package scenes

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/banner/pkg/config"
	"github.com/gonewx/banner/pkg/ecs"
	"github.com/gonewx/banner/pkg/game"
	"github.com/gonewx/banner/pkg/systems"
)

// 横幅容器背景色（深色底衬托漂浮图片和白色标题）
var bannerBackground = color.RGBA{R: 0x16, G: 0x1e, B: 0x2a, A: 0xff}

// BannerScene 交互式横幅场景
//
// 职责：
//   - 组装实体管理器和轨迹三系统（输入、生成、渲染）
//   - 渲染固定的标题覆盖层
//   - 处理场景级按键（T 切换轨迹开关并持久化，Esc 返回菜单）
//
// 图片列表为空时场景退化为空容器：不轮询输入、不渲染内容。
// 被切换走时 Teardown 取消未决计时器并销毁全部轨迹实体。
type BannerScene struct {
	resources    *game.ResourceManager
	settings     *game.SettingsManager
	sceneManager *game.SceneManager
	cfg          *config.BannerConfig

	entityManager *ecs.EntityManager
	trail         *systems.PointerTrailSystem
	render        *systems.TrailRenderSystem
	input         *systems.InputSystem
}

// NewBannerScene 创建横幅场景
// rng 传 nil 时使用时间种子（测试时注入固定种子）
func NewBannerScene(resources *game.ResourceManager, settings *game.SettingsManager, sceneManager *game.SceneManager, rng *rand.Rand) *BannerScene {
	cfg := resources.BannerConfig()

	em := ecs.NewEntityManager()
	trail := systems.NewPointerTrailSystem(em, cfg.Images, rng)

	// 容器占满整个逻辑屏幕
	container := image.Rect(0, 0, config.WindowWidth, config.WindowHeight)

	return &BannerScene{
		resources:     resources,
		settings:      settings,
		sceneManager:  sceneManager,
		cfg:           cfg,
		entityManager: em,
		trail:         trail,
		render:        systems.NewTrailRenderSystem(em, resources, trail),
		input:         systems.NewInputSystem(trail, container),
	}
}

// Update 更新场景逻辑
func (s *BannerScene) Update(deltaTime float64) {
	if s.handleKeys() {
		return
	}

	// 空图片列表：定义良好的空操作状态
	if len(s.cfg.Images) == 0 {
		return
	}

	if s.settings.Settings().TrailEnabled {
		s.input.Update()
	}
	s.trail.Update(deltaTime)

	// 被截断淘汰的实体在本帧末尾真正删除
	s.entityManager.RemoveMarkedEntities()
}

// handleKeys 处理场景级按键，返回 true 表示场景即将切换
func (s *BannerScene) handleKeys() bool {
	if s.sceneManager != nil && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sceneManager.LoadScene("menu")
		return true
	}

	// T 切换轨迹效果并持久化
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		enabled := !s.settings.Settings().TrailEnabled
		s.settings.SetTrailEnabled(enabled)
		if err := s.settings.Save(); err != nil {
			// 保存失败只影响下次启动，不中断当前会话
			_ = err
		}
		if !enabled {
			s.trail.Reset()
		}
	}
	return false
}

// Draw 渲染场景
func (s *BannerScene) Draw(screen *ebiten.Image) {
	screen.Fill(bannerBackground)

	// 空图片列表：只渲染空容器
	if len(s.cfg.Images) == 0 {
		return
	}

	s.render.Draw(screen)
	s.drawTitle(screen)
}

// drawTitle 渲染固定的标题覆盖层
func (s *BannerScene) drawTitle(screen *ebiten.Image) {
	face := s.resources.Face(config.TitleFontSize)
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.WindowWidth/2, config.TitleOverlayY)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s.cfg.Title, face, op)
}

// Teardown 场景卸载：取消未决计时器并销毁全部轨迹实体
func (s *BannerScene) Teardown() {
	s.trail.Reset()
	s.entityManager.RemoveMarkedEntities()
}

// TrailSystem 返回轨迹系统（供验证工具和测试使用）
func (s *BannerScene) TrailSystem() *systems.PointerTrailSystem {
	return s.trail
}
