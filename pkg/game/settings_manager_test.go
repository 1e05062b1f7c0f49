package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.TrailEnabled {
		t.Error("TrailEnabled: got false, want true")
	}
}

// newTestGdataManager 在临时目录创建 gdata manager
func newTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: "test_banner_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	m := newTestGdataManager(t)

	sm, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	// 首次运行无存档，应使用默认设置
	if !sm.Settings().TrailEnabled {
		t.Error("首次运行 TrailEnabled 应为默认值 true")
	}
}

// TestSettingsManagerDegraded 测试 nil gdata 的降级模式
func TestSettingsManagerDegraded(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) failed: %v", err)
	}

	// 降级模式下 Save/Load 都不报错，仅内存生效
	sm.SetTrailEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save 不应报错: %v", err)
	}
	if sm.Settings().TrailEnabled {
		t.Error("内存设置应已更新")
	}

	if err := sm.Load(); err != nil {
		t.Errorf("降级模式 Load 不应报错: %v", err)
	}
	// 降级模式下 Load 回退默认值
	if !sm.Settings().TrailEnabled {
		t.Error("降级模式 Load 后应恢复默认值")
	}
}

// TestSettingsManagerSaveLoad 测试设置的保存和重新加载
func TestSettingsManagerSaveLoad(t *testing.T) {
	m := newTestGdataManager(t)

	sm, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	sm.SetFullscreen(true)
	sm.SetTrailEnabled(false)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 用同一个 gdata manager 新建管理器，应读到保存的设置
	sm2, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager (reload) failed: %v", err)
	}

	if !sm2.Settings().Fullscreen {
		t.Error("重新加载后 Fullscreen 应为 true")
	}
	if sm2.Settings().TrailEnabled {
		t.Error("重新加载后 TrailEnabled 应为 false")
	}
}
