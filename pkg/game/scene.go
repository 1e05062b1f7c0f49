package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene (e.g., menu, banner).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Teardown 是一个可选接口，用于支持场景在被切换走时释放资源
//
// 实现此接口的场景会在 SceneManager 切换到其他场景时被调用
// Teardown()：取消未决的计时器、销毁场景私有实体等。
// 对应组件卸载语义——切走后场景不得再持有活动状态。
type Teardown interface {
	Teardown()
}
