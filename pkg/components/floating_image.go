package components

// FloatingImageComponent 表示一个跟随指针轨迹生成的漂浮图片
//
// 漂浮图片是短命的视觉元素：由指针/触摸移动事件生成，
// 由列表截断（最旧优先淘汰）或定时清理销毁。
// 位置信息存储在同一实体的 PositionComponent 中。
type FloatingImageComponent struct {
	// ID 时间基标识（自系统启动的毫秒数），同一批次内以索引区分
	// 格式: "<毫秒>-<批次内索引>"
	ID string

	// Src 图片资源引用，从配置的图片列表中均匀随机选取
	Src string

	// Rotation 随机旋转角度（度），范围 [-6, 6]
	Rotation float64

	// Scale 随机缩放因子，范围 [0.9, 1.2]
	Scale float64

	// ZIndex 随机层叠基数，范围 [0, 15)
	// 仅用于绘制顺序和透明度排序，不保证唯一
	ZIndex int

	// Seq 插入序号（单调递增）
	// 渲染系统按 Seq 恢复插入顺序来计算渲染索引
	Seq int
}
