package config

// 窗口与容器布局常量
// 逻辑尺寸固定，Ebitengine 负责实际窗口的缩放

const (
	// WindowWidth 逻辑屏幕宽度（像素）
	WindowWidth = 800
	// WindowHeight 逻辑屏幕高度（像素）
	WindowHeight = 600

	// TitleOverlayY 标题覆盖层的垂直位置（像素，容器顶部向下）
	TitleOverlayY = 60.0
	// TitleFontSize 标题字号（像素）
	TitleFontSize = 36.0

	// CursorMarkerRadius 指针跟随标记的半径（像素）
	CursorMarkerRadius = 6.0
)
