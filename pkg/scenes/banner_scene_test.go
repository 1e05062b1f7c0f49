package scenes

import (
	"math/rand"
	"testing"

	"github.com/gonewx/banner/pkg/game"
)

// newTestScene 构造不依赖图形环境的横幅场景
// 默认配置图片列表为空，Update 走空操作路径
func newTestScene(t *testing.T) *BannerScene {
	t.Helper()

	resources := game.NewResourceManager()
	settings, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("创建设置管理器失败: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	return NewBannerScene(resources, settings, nil, rng)
}

// TestBannerSceneEmptyImagesUpdate 空图片列表下 Update 是定义良好的空操作
func TestBannerSceneEmptyImagesUpdate(t *testing.T) {
	scene := newTestScene(t)

	for i := 0; i < 10; i++ {
		scene.Update(1.0 / 60.0)
	}

	if got := scene.trail.TrailLen(); got != 0 {
		t.Errorf("空图片列表不应产生轨迹: got %d", got)
	}
}

// TestBannerSceneEventsIgnoredWhenEmpty 空图片列表下事件不生成实体
func TestBannerSceneEventsIgnoredWhenEmpty(t *testing.T) {
	scene := newTestScene(t)

	scene.trail.HandlePointerMove(100, 100)
	scene.trail.HandleTouchMove(200, 200)
	scene.Update(1.0 / 60.0)

	if got := scene.entityManager.EntityCount(); got != 0 {
		t.Errorf("实体数: got %d, want 0", got)
	}
}

// TestBannerSceneTeardown 卸载后轨迹实体和标记全部清除
func TestBannerSceneTeardown(t *testing.T) {
	scene := newTestScene(t)
	scene.Update(1.0 / 60.0)

	scene.Teardown()

	if got := scene.entityManager.EntityCount(); got != 0 {
		t.Errorf("Teardown 后实体数: got %d, want 0", got)
	}
	if _, _, visible := scene.trail.Marker(); visible {
		t.Error("Teardown 后标记应隐藏")
	}
}
