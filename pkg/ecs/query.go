package ecs

import "reflect"

// 泛型查询辅助函数
// 相比直接使用 reflect.TypeOf 的写法，调用方无需手写类型断言

// GetComponent 获取实体的 T 类型组件
// T 必须是组件的指针类型，如 GetComponent[*components.PositionComponent]
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeOf(zero)]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := GetComponent[T](em, id)
	return ok
}

// GetEntitiesWith1 查询所有拥有 T1 组件的实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	var z1 T1
	return em.entitiesWithTypes(reflect.TypeOf(z1))
}

// GetEntitiesWith2 查询所有同时拥有 T1 和 T2 组件的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	return em.entitiesWithTypes(reflect.TypeOf(z1), reflect.TypeOf(z2))
}

// GetEntitiesWith3 查询所有同时拥有 T1、T2 和 T3 组件的实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	var z3 T3
	return em.entitiesWithTypes(reflect.TypeOf(z1), reflect.TypeOf(z2), reflect.TypeOf(z3))
}

// entitiesWithTypes 返回拥有全部给定组件类型的实体ID列表
// 返回顺序不确定（map 遍历顺序），调用方如需稳定顺序应自行排序
func (em *EntityManager) entitiesWithTypes(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
