// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/banner/pkg/config"
	"github.com/gonewx/banner/pkg/game"
	"github.com/gonewx/banner/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Scene 指定启动场景（"menu" 或 "banner"），为空默认 "menu"
	Scene string
	// Fullscreen 启动时直接进入全屏
	Fullscreen bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	windowTitle              string
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 创建资源管理器并加载横幅配置
	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadBannerConfig("assets/config/banner.yaml"); err != nil {
		return nil, fmt.Errorf("横幅配置加载失败: %w", err)
	}
	bannerCfg := resourceManager.BannerConfig()
	log.Printf("[App] 横幅配置: %d 张图片, title=%q", len(bannerCfg.Images), bannerCfg.Title)

	// 初始化持久化设置（gdata 不可用时降级为内存模式）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "gonewx_banner"})
	if err != nil {
		log.Printf("[App] gdata 不可用, 设置不持久化: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	if err := settingsManager.Load(); err != nil {
		log.Printf("[App] 设置加载失败, 使用默认值: %v", err)
	}

	// 创建场景管理器和场景工厂
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case "banner":
			return scenes.NewBannerScene(resourceManager, settingsManager, sceneManager, rand.New(rand.NewSource(rand.Int63())))
		case "menu":
			return scenes.NewMenuScene(resourceManager, settingsManager, sceneManager)
		default:
			log.Printf("[App] 未知场景 %q", name)
			return nil
		}
	})

	startScene := cfg.Scene
	if startScene == "" {
		startScene = "menu"
	}
	sceneManager.LoadScene(startScene)
	if sceneManager.CurrentScene() == nil {
		return nil, fmt.Errorf("启动场景 %q 加载失败", startScene)
	}

	if cfg.Fullscreen || settingsManager.Settings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		windowTitle:     bannerCfg.AltText,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(!isFullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] 设置保存失败: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// WindowTitle 返回横幅配置的无障碍标签，用作窗口标题
func (a *App) WindowTitle() string {
	return a.windowTitle
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
