package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/banner/pkg/utils"
)

// InputSystem 轮询 Ebitengine 的指针/触摸状态并转换为轨迹系统的离散事件
//
// Ebitengine 没有回调式的 mousemove/touchmove 事件，
// 本系统在每个 tick 比较当前位置与上一帧位置来合成移动事件：
//   - 鼠标在容器内位置变化 -> HandlePointerMove
//   - 鼠标从容器内移动到容器外 -> HandlePointerLeave
//   - 活动触摸位置变化（或触摸开始）-> HandleTouchMove
//
// 触摸优先于鼠标（与移动设备上的指针事件模型一致）。
// 事件坐标转换为容器本地坐标（原点在容器左上角）。
type InputSystem struct {
	trail     *PointerTrailSystem
	container image.Rectangle

	lastCursorX, lastCursorY int
	cursorInside             bool

	lastTouchX, lastTouchY int
	touchActive            bool
}

// NewInputSystem 创建输入系统
// container 是横幅容器在逻辑屏幕上的矩形
func NewInputSystem(trail *PointerTrailSystem, container image.Rectangle) *InputSystem {
	return &InputSystem{
		trail:     trail,
		container: container,
	}
}

// Update 轮询输入状态并派发事件
// 每个 tick 调用一次
func (s *InputSystem) Update() {
	// 触摸优先（移动设备）
	if tx, ty, ok := utils.ActiveTouchPosition(); ok {
		if utils.PointInRect(tx, ty, s.container) {
			moved := !s.touchActive || tx != s.lastTouchX || ty != s.lastTouchY
			if moved {
				s.trail.HandleTouchMove(s.local(tx, ty))
			}
			s.lastTouchX, s.lastTouchY = tx, ty
			s.touchActive = true
		}
		return
	}
	s.touchActive = false

	// 鼠标（桌面设备）
	cx, cy := ebiten.CursorPosition()
	inside := utils.PointInRect(cx, cy, s.container)

	switch {
	case inside && (cx != s.lastCursorX || cy != s.lastCursorY):
		s.trail.HandlePointerMove(s.local(cx, cy))
	case !inside && s.cursorInside:
		s.trail.HandlePointerLeave()
	}

	s.lastCursorX, s.lastCursorY = cx, cy
	s.cursorInside = inside
}

// local 把屏幕坐标转换为容器本地坐标
func (s *InputSystem) local(x, y int) (float64, float64) {
	return float64(x - s.container.Min.X), float64(y - s.container.Min.Y)
}
