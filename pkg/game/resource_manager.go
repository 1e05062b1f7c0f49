package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/banner/pkg/config"
	"github.com/gonewx/banner/pkg/embedded"
	"github.com/gonewx/banner/pkg/placeholder"
)

// 资源缺失时生成的占位图尺寸（接近轨迹图片的典型尺寸）
const (
	fallbackImageWidth  = 96
	fallbackImageHeight = 72
)

// ResourceManager is responsible for centralized management of banner assets.
// It provides loading and caching for images and text faces, ensuring each
// resource is decoded only once and reused for the component's lifetime.
//
// Resource references come in two forms (see config.BannerConfig):
//   - embedded asset paths ("assets/images/gopher.png"), decoded via image/png
//     or image/jpeg
//   - placeholder references ("placeholder:<hex>:<text>:<WxH>"), generated
//     on the fly by pkg/placeholder
//
// A missing or corrupted asset degrades to a generated placeholder instead of
// failing: the banner keeps running with a visible stand-in.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go
// maps. All loading happens on the single-threaded game loop, so no
// synchronization is needed.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // 已解码图片缓存: 引用 -> 图片
	fontFaceCache map[string]*text.GoTextFace // 字体缓存: "size" -> face
	faceSource    *text.GoTextFaceSource      // 内置 Go Regular 字体源（懒加载）

	bannerConfig *config.BannerConfig // 已加载的横幅配置
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadBannerConfig 从嵌入资源加载横幅配置
//
// 参数:
//   - path: 配置文件路径，如 "assets/config/banner.yaml"
func (rm *ResourceManager) LoadBannerConfig(path string) error {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取横幅配置失败: %w", err)
	}

	cfg, err := config.ParseBannerConfig(data)
	if err != nil {
		return err
	}

	rm.bannerConfig = cfg
	log.Printf("[ResourceManager] 横幅配置加载完成: %d 张图片", len(cfg.Images))
	return nil
}

// BannerConfig 返回已加载的横幅配置
// 未加载时返回默认配置（空图片列表，横幅渲染空容器）
func (rm *ResourceManager) BannerConfig() *config.BannerConfig {
	if rm.bannerConfig == nil {
		return config.DefaultBannerConfig()
	}
	return rm.bannerConfig
}

// LoadImage loads an image from the embedded filesystem and caches it.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG, JPEG.
func (rm *ResourceManager) LoadImage(assetPath string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[assetPath]; ok {
		return img, nil
	}

	data, err := embedded.ReadFile(assetPath)
	if err != nil {
		return nil, fmt.Errorf("读取图片资源失败 %s: %w", assetPath, err)
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("解码图片失败 %s: %w", assetPath, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[assetPath] = img
	return img, nil
}

// ImageByRef resolves a resource reference to a ready-to-draw image.
//
// 解析顺序:
//  1. 缓存命中直接返回
//  2. "placeholder:" 引用 -> 生成占位图
//  3. 资源路径 -> 从嵌入文件系统解码
//  4. 加载失败 -> 生成带文件名标签的占位图（降级，不报错）
//
// 需要 Ebitengine 图形上下文，应在游戏循环内调用。
func (rm *ResourceManager) ImageByRef(ref string) *ebiten.Image {
	if img, ok := rm.imageCache[ref]; ok {
		return img
	}

	var img *ebiten.Image
	if opts, ok := placeholder.FromRef(ref); ok {
		img = placeholder.Image(opts, rm.Face(placeholderFontSize(opts)))
	} else if loaded, err := rm.LoadImage(ref); err == nil {
		img = loaded
	} else {
		log.Printf("[ResourceManager] 图片加载失败，使用占位图代替: %v", err)
		img = placeholder.Image(placeholder.Options{
			Width:  fallbackImageWidth,
			Height: fallbackImageHeight,
			Text:   path.Base(ref),
		}, rm.Face(14))
	}

	rm.imageCache[ref] = img
	return img
}

// Face returns a text face of the given size backed by the bundled
// Go Regular font. Faces are cached per size.
//
// 使用内置字体而非嵌入 TTF 文件，避免仓库携带二进制资源。
func (rm *ResourceManager) Face(size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%.1f", size)
	if face, ok := rm.fontFaceCache[cacheKey]; ok {
		return face
	}

	if rm.faceSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// 内置字体解析失败属于程序错误，不是运行环境问题
			log.Printf("[ResourceManager] 内置字体解析失败: %v", err)
			return nil
		}
		rm.faceSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.faceSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face
}

// placeholderFontSize 根据占位图尺寸计算合适的标签字号
func placeholderFontSize(opts placeholder.Options) float64 {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = placeholder.DefaultWidth
	}
	if h <= 0 {
		h = placeholder.DefaultHeight
	}
	size := float64(min(w, h)) / 5
	if size < 8 {
		size = 8
	}
	return size
}
