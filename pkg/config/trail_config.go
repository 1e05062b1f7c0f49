package config

// 指针漂浮图片轨迹的调优常量
//
// 这些值共同构成"渐隐轨迹"效果：
// 指针移动时按节流间隔生成图片，静止后由清理计时器收缩列表，
// 指针离开容器后整个列表被延迟清空。

const (
	// TrailSpawnInterval 节流门间隔（秒）
	// 两次生成批次之间至少间隔此时长；指针标记不受节流影响，每个事件都更新
	TrailSpawnInterval = 0.08

	// TrailRetireDelay 清理计时器延迟（秒）
	// 每次生成批次都会重置此计时器；到期后列表收缩到 TrailRetireKeep 条
	TrailRetireDelay = 0.5

	// TrailClearDelay 指针离开容器后清空列表的延迟（秒）
	// 到期后无条件清空，后续事件不会取消
	TrailClearDelay = 0.2

	// TrailMaxActive 活跃移动期间列表长度上限
	TrailMaxActive = 12

	// TrailRetireKeep 清理计时器到期后保留的最近条目数
	TrailRetireKeep = 6

	// TrailTouchKeep 触摸输入下的列表长度上限
	TrailTouchKeep = 4

	// TrailDoubleSpawnChance 同一批次生成第二张图片的概率
	TrailDoubleSpawnChance = 0.2

	// TrailJitter 生成位置相对触发坐标的最大抖动（像素，每轴 ±）
	TrailJitter = 50.0

	// TrailMaxRotation 随机旋转角度上限（度，±）
	TrailMaxRotation = 6.0

	// TrailScaleMin 随机缩放下限
	TrailScaleMin = 0.9
	// TrailScaleMax 随机缩放上限
	TrailScaleMax = 1.2

	// TrailZIndexRange 随机层叠基数取值范围 [0, TrailZIndexRange)
	TrailZIndexRange = 15

	// TrailOpacityStep 每个渲染索引的透明度递减量
	TrailOpacityStep = 0.08
	// TrailOpacityFloor 透明度下限
	TrailOpacityFloor = 0.15
)
