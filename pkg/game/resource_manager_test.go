package game

import (
	"embed"
	"testing"

	"github.com/gonewx/banner/pkg/embedded"
)

//go:embed testdata
var testAssetsFS embed.FS

func TestLoadBannerConfig(t *testing.T) {
	embedded.Init(testAssetsFS)

	rm := NewResourceManager()
	if err := rm.LoadBannerConfig("testdata/banner.yaml"); err != nil {
		t.Fatalf("LoadBannerConfig failed: %v", err)
	}

	cfg := rm.BannerConfig()
	if len(cfg.Images) != 2 {
		t.Errorf("图片数量: got %d, want 2", len(cfg.Images))
	}
	if cfg.Title != "Test Banner" {
		t.Errorf("Title: got %q", cfg.Title)
	}
	if cfg.AutoRotateMs != 5000 {
		t.Errorf("AutoRotateMs: got %d, want 5000", cfg.AutoRotateMs)
	}
}

func TestLoadBannerConfigMissing(t *testing.T) {
	embedded.Init(testAssetsFS)

	rm := NewResourceManager()
	if err := rm.LoadBannerConfig("testdata/missing.yaml"); err == nil {
		t.Error("加载不存在的配置应返回错误")
	}

	// 未成功加载时应返回默认配置而不是 nil
	cfg := rm.BannerConfig()
	if cfg == nil {
		t.Fatal("BannerConfig() 不应返回 nil")
	}
	if len(cfg.Images) != 0 {
		t.Error("默认配置的图片列表应为空")
	}
}

// TestFace 测试内置字体的加载与缓存
// GoTextFaceSource 的构建不需要图形上下文，可在无 GPU 环境运行
func TestFace(t *testing.T) {
	rm := NewResourceManager()

	face := rm.Face(24)
	if face == nil {
		t.Fatal("Face(24) returned nil")
	}
	if face.Size != 24 {
		t.Errorf("字号: got %v, want 24", face.Size)
	}

	// 相同字号应命中缓存
	if rm.Face(24) != face {
		t.Error("相同字号应返回缓存的 face")
	}

	// 不同字号是不同实例，但共享字体源
	other := rm.Face(36)
	if other == face {
		t.Error("不同字号不应返回同一实例")
	}
	if other.Source != face.Source {
		t.Error("不同字号应共享同一字体源")
	}
}
