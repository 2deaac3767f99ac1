// component/movement.go
package component

import rl "github.com/gen2brain/raylib-go/raylib"

// Transform — позиция и ориентация сущности в мире.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // эйлеровы углы в радианах, чисто визуальное вращение
	Scale    float32
}

// Velocity — компонент скорости.
type Velocity struct {
	Linear rl.Vector3
}
