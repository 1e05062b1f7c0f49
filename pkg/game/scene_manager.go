package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据场景名称创建场景实例，避免 game 包与 scenes 包循环依赖
type SceneFactory func(name string) Scene

// SceneManager manages the application's high-level state by controlling
// which scene is active. It ensures only one scene's Update and Draw
// methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// 如果旧场景实现了 Teardown 接口，切换前先调用其 Teardown()
func (sm *SceneManager) SwitchTo(scene Scene) {
	if td, ok := sm.currentScene.(Teardown); ok {
		td.Teardown()
	}
	sm.currentScene = scene
}

// CurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// LoadScene 通过工厂函数创建并切换到指定名称的场景
func (sm *SceneManager) LoadScene(name string) {
	log.Printf("[SceneManager] 切换场景: %s", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(name)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return
	}
	sm.SwitchTo(newScene)
}

// Update updates the currently active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
