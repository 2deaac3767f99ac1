// component/render.go
package component

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape — форма отрисовки сущности.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Shape       Shape
	Color       color.RGBA
	HalfExtents rl.Vector3 // половины размеров по осям
	Opacity     float32    // [0, 1]
}
