package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BannerConfig 横幅组件的公开配置
// 从 assets/config/banner.yaml 加载
type BannerConfig struct {
	// Images 漂浮图片的资源引用列表
	// 支持两种形式：
	//   - 资源路径，如 "assets/images/gopher.png"
	//   - 占位图引用，如 "placeholder:e74c3c:Go:96x72"（见 pkg/placeholder）
	// 列表为空时横幅渲染空容器（定义良好的空操作，不是错误）
	Images []string `yaml:"images"`

	// AltText 无障碍标签，同时用作窗口标题
	AltText string `yaml:"altText"`

	// Title 标题覆盖层文字
	Title string `yaml:"title"`

	// AutoRotateMs 自动轮播间隔（毫秒）
	// 预留字段：当前的生成逻辑不读取此值（保持空操作）
	AutoRotateMs int `yaml:"autoRotateMs"`
}

// DefaultBannerConfig 返回默认横幅配置
func DefaultBannerConfig() *BannerConfig {
	return &BannerConfig{
		Images:  nil,
		AltText: "banner",
		Title:   "Interactive Banner",
	}
}

// ParseBannerConfig 从 YAML 数据解析横幅配置
// 未设置的字段使用默认值填充
func ParseBannerConfig(data []byte) (*BannerConfig, error) {
	cfg := DefaultBannerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析横幅配置失败: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults 为空字段填充默认值
func (c *BannerConfig) applyDefaults() {
	if c.AltText == "" {
		c.AltText = "banner"
	}
	if c.Title == "" {
		c.Title = "Interactive Banner"
	}
}
