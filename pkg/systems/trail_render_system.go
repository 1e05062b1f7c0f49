package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/banner/pkg/components"
	"github.com/gonewx/banner/pkg/config"
	"github.com/gonewx/banner/pkg/ecs"
)

// ImageResolver 把资源引用解析为可绘制的图片
// 由 game.ResourceManager 实现；渲染系统只依赖此接口
type ImageResolver interface {
	ImageByRef(ref string) *ebiten.Image
}

// TrailRenderSystem 渲染漂浮图片轨迹和指针跟随标记
//
// 绘制规则：按插入顺序给每条轨迹分配渲染索引（0 = 最旧），
// 层叠顺序为 ZIndex + 渲染索引（升序），透明度随渲染索引递减
// （每级减 TrailOpacityStep，下限 TrailOpacityFloor）——
// 无需逐条透明度动画即可形成渐隐轨迹的错觉。
type TrailRenderSystem struct {
	entityManager *ecs.EntityManager
	resolver      ImageResolver
	trail         *PointerTrailSystem
}

// NewTrailRenderSystem 创建轨迹渲染系统
func NewTrailRenderSystem(em *ecs.EntityManager, resolver ImageResolver, trail *PointerTrailSystem) *TrailRenderSystem {
	return &TrailRenderSystem{
		entityManager: em,
		resolver:      resolver,
		trail:         trail,
	}
}

// trailEntry 单条轨迹的绘制参数
type trailEntry struct {
	img         *components.FloatingImageComponent
	pos         *components.PositionComponent
	renderIndex int
}

// Draw 渲染全部漂浮图片和指针标记
func (s *TrailRenderSystem) Draw(screen *ebiten.Image) {
	for _, entry := range collectTrailEntries(s.entityManager) {
		img := s.resolver.ImageByRef(entry.img.Src)
		if img == nil {
			continue
		}

		w := float64(img.Bounds().Dx())
		h := float64(img.Bounds().Dy())

		op := &ebiten.DrawImageOptions{}
		// 围绕图片中心旋转和缩放，再平移到目标位置
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(entry.img.Rotation * math.Pi / 180)
		op.GeoM.Scale(entry.img.Scale, entry.img.Scale)
		op.GeoM.Translate(entry.pos.X, entry.pos.Y)
		op.Filter = ebiten.FilterLinear
		op.ColorScale.ScaleAlpha(TrailOpacity(entry.renderIndex))
		screen.DrawImage(img, op)
	}

	// 指针跟随标记
	if x, y, visible := s.trail.Marker(); visible {
		vector.DrawFilledCircle(screen,
			float32(x), float32(y), config.CursorMarkerRadius,
			color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb0}, true)
	}
}

// collectTrailEntries 收集全部轨迹实体并确定绘制顺序
//
// 先按插入序号恢复插入顺序并分配渲染索引，
// 再按 StackOrder 稳定排序得到最终绘制顺序
func collectTrailEntries(em *ecs.EntityManager) []trailEntry {
	ids := ecs.GetEntitiesWith2[*components.FloatingImageComponent, *components.PositionComponent](em)

	entries := make([]trailEntry, 0, len(ids))
	for _, id := range ids {
		img, ok := ecs.GetComponent[*components.FloatingImageComponent](em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		entries = append(entries, trailEntry{img: img, pos: pos})
	}

	// 插入顺序（Seq 升序）决定渲染索引
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].img.Seq < entries[j].img.Seq
	})
	for i := range entries {
		entries[i].renderIndex = i
	}

	// 层叠顺序：ZIndex + 渲染索引，升序绘制（大的最后画、在最上层）
	sort.SliceStable(entries, func(i, j int) bool {
		a := StackOrder(entries[i].img.ZIndex, entries[i].renderIndex)
		b := StackOrder(entries[j].img.ZIndex, entries[j].renderIndex)
		return a < b
	})

	return entries
}

// StackOrder 计算轨迹条目的层叠顺序键
func StackOrder(zIndex, renderIndex int) int {
	return zIndex + renderIndex
}

// TrailOpacity 计算给定渲染索引的透明度
// 从 1.0 开始每级递减 TrailOpacityStep，下限 TrailOpacityFloor
func TrailOpacity(renderIndex int) float32 {
	opacity := 1.0 - config.TrailOpacityStep*float64(renderIndex)
	if opacity < config.TrailOpacityFloor {
		opacity = config.TrailOpacityFloor
	}
	return float32(opacity)
}
