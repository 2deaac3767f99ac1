// internal/defs/arena.go
package defs

// ObstacleDefinition describes a static axis-aligned box in the arena.
type ObstacleDefinition struct {
	Name string     `json:"name"`
	Min  [3]float32 `json:"min"`
	Max  [3]float32 `json:"max"`
}

// defaultArenaLayout возвращает встроенную расстановку препятствий:
// четыре колонны вокруг центра и одна низкая платформа, на которую
// можно запрыгнуть двойным прыжком.
func defaultArenaLayout() []ObstacleDefinition {
	return []ObstacleDefinition{
		{Name: "pillar_ne", Min: [3]float32{7, 0, 7}, Max: [3]float32{9, 4, 9}},
		{Name: "pillar_nw", Min: [3]float32{-9, 0, 7}, Max: [3]float32{-7, 4, 9}},
		{Name: "pillar_se", Min: [3]float32{7, 0, -9}, Max: [3]float32{9, 4, -7}},
		{Name: "pillar_sw", Min: [3]float32{-9, 0, -9}, Max: [3]float32{-7, 4, -7}},
		{Name: "platform", Min: [3]float32{-2, 0, -14}, Max: [3]float32{2, 1.5, -10}},
	}
}
