package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gonewx/banner/pkg/components"
	"github.com/gonewx/banner/pkg/config"
	"github.com/gonewx/banner/pkg/ecs"
)

// PointerTrailSystem 将连续的指针/触摸输入转换为有界的、渐隐的漂浮图片轨迹
//
// 状态机（每个指针会话）：
//   - 指针移动：无条件更新指针标记位置；随后经过节流门——距上次
//     接受的生成批次不足 TrailSpawnInterval 则跳过生成
//   - 生成批次：创建 1 张图片（TrailDoubleSpawnChance 概率同批再创建 1 张），
//     列表截断到最近 TrailMaxActive 条，并重置 TrailRetireDelay 清理计时器
//     （新批次取消并替换任何未决的清理计时器，同一时刻最多一个在等待）
//   - 指针离开：安排 TrailClearDelay 后无条件清空列表，后续事件不取消
//   - 触摸移动：绕过节流门，每个事件恰好生成 1 张，截断到 TrailTouchKeep 条，
//     不使用清理计时器
//
// 计时器是系统实例私有的单槽倒计时，由 Update(deltaTime) 驱动——
// 不依赖墙钟也不启动 goroutine，与事件回调天然串行。
// Teardown 时调用 Reset() 取消计时器并销毁全部轨迹实体。
type PointerTrailSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	images        []string

	// 指针标记位置（每个移动事件都更新，不受节流影响）
	markerX, markerY float64
	markerVisible    bool

	elapsed        float64 // 系统启动以来的累计时间（秒），用于生成时间基ID
	sinceLastBurst float64 // 距上次接受的生成批次的时间（秒）
	nextSeq        int     // 插入序号，单调递增

	// 轨迹实体ID，按插入顺序排列（trail[0] 最旧）
	trail []ecs.EntityID

	// 单槽清理倒计时：到期后列表收缩到 TrailRetireKeep 条
	retireRemaining float64
	retireArmed     bool

	// 离开清空倒计时：到期后无条件清空列表
	clearRemaining float64
	clearArmed     bool
}

// NewPointerTrailSystem 创建指针轨迹系统
//
// 参数：
//   - em: 实体管理器，轨迹实体的归属
//   - images: 图片资源引用列表；为空时所有事件都是空操作
//   - rng: 随机源；传 nil 使用时间种子（测试时注入固定种子以获得确定性）
func NewPointerTrailSystem(em *ecs.EntityManager, images []string, rng *rand.Rand) *PointerTrailSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PointerTrailSystem{
		entityManager: em,
		rng:           rng,
		images:        images,
		// 首个移动事件应立即生成
		sinceLastBurst: config.TrailSpawnInterval,
	}
}

// Update 推进系统时钟和未决的倒计时
// 每个 tick 调用一次
func (s *PointerTrailSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.sinceLastBurst += deltaTime

	if s.retireArmed {
		s.retireRemaining -= deltaTime
		if s.retireRemaining <= 0 {
			s.retireArmed = false
			s.truncate(config.TrailRetireKeep)
		}
	}

	if s.clearArmed {
		s.clearRemaining -= deltaTime
		if s.clearRemaining <= 0 {
			s.clearArmed = false
			s.truncate(0)
		}
	}
}

// HandlePointerMove 处理指针移动事件
// 坐标为容器本地坐标（原点在容器左上角）
func (s *PointerTrailSystem) HandlePointerMove(x, y float64) {
	// 标记位置无条件更新，节流门只限制生成
	s.markerX, s.markerY = x, y
	s.markerVisible = true

	if len(s.images) == 0 {
		return
	}
	if s.sinceLastBurst < config.TrailSpawnInterval {
		return
	}
	s.sinceLastBurst = 0

	count := 1
	if s.rng.Float64() < config.TrailDoubleSpawnChance {
		count = 2
	}
	for i := 0; i < count; i++ {
		s.spawn(x, y, i)
	}
	s.truncate(config.TrailMaxActive)

	// 重置清理计时器：只有最新的一次等待生效
	s.retireArmed = true
	s.retireRemaining = config.TrailRetireDelay
}

// HandleTouchMove 处理触摸移动事件
// 独立于指针节流门：每个事件无条件生成一张，且不使用清理计时器
func (s *PointerTrailSystem) HandleTouchMove(x, y float64) {
	s.markerX, s.markerY = x, y
	s.markerVisible = true

	if len(s.images) == 0 {
		return
	}

	s.spawn(x, y, 0)
	s.truncate(config.TrailTouchKeep)
}

// HandlePointerLeave 处理指针离开容器事件
// 安排 TrailClearDelay 后无条件清空列表；已在等待的清空不会被推迟
func (s *PointerTrailSystem) HandlePointerLeave() {
	s.markerVisible = false

	if !s.clearArmed {
		s.clearArmed = true
		s.clearRemaining = config.TrailClearDelay
	} else if config.TrailClearDelay < s.clearRemaining {
		s.clearRemaining = config.TrailClearDelay
	}
}

// Reset 释放系统持有的全部状态
// 场景卸载时调用：取消未决倒计时，销毁所有轨迹实体，隐藏指针标记
func (s *PointerTrailSystem) Reset() {
	s.truncate(0)
	s.retireArmed = false
	s.clearArmed = false
	s.markerVisible = false
	s.sinceLastBurst = config.TrailSpawnInterval
}

// TrailLen 返回当前轨迹列表长度
func (s *PointerTrailSystem) TrailLen() int {
	return len(s.trail)
}

// TrailEntities 返回轨迹实体ID（按插入顺序，trail[0] 最旧）
// 返回内部切片的副本，调用方可自由持有
func (s *PointerTrailSystem) TrailEntities() []ecs.EntityID {
	out := make([]ecs.EntityID, len(s.trail))
	copy(out, s.trail)
	return out
}

// Marker 返回指针标记的位置和可见性
func (s *PointerTrailSystem) Marker() (x, y float64, visible bool) {
	return s.markerX, s.markerY, s.markerVisible
}

// spawn 创建一个漂浮图片实体
// burstIndex 用于区分同一批次内的多张图片
func (s *PointerTrailSystem) spawn(x, y float64, burstIndex int) {
	id := s.entityManager.CreateEntity()

	s.entityManager.AddComponent(id, &components.PositionComponent{
		X: x + (s.rng.Float64()*2-1)*config.TrailJitter,
		Y: y + (s.rng.Float64()*2-1)*config.TrailJitter,
	})
	s.entityManager.AddComponent(id, &components.FloatingImageComponent{
		ID:       fmt.Sprintf("%d-%d", int64(s.elapsed*1000), burstIndex),
		Src:      s.images[s.rng.Intn(len(s.images))],
		Rotation: (s.rng.Float64()*2 - 1) * config.TrailMaxRotation,
		Scale:    config.TrailScaleMin + s.rng.Float64()*(config.TrailScaleMax-config.TrailScaleMin),
		ZIndex:   s.rng.Intn(config.TrailZIndexRange),
		Seq:      s.nextSeq,
	})
	s.nextSeq++

	s.trail = append(s.trail, id)
}

// truncate 将轨迹列表收缩到最多 n 条，最旧的先被淘汰
func (s *PointerTrailSystem) truncate(n int) {
	for len(s.trail) > n {
		s.entityManager.DestroyEntity(s.trail[0])
		s.trail = s.trail[1:]
	}
}
