package components

// PositionComponent 存储实体在容器内的位置
// 坐标以容器左上角为原点，单位为逻辑像素
type PositionComponent struct {
	X float64
	Y float64
}
