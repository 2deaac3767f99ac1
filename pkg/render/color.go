// pkg/render/color.go
package render

import "image/color"

// WithOpacity масштабирует альфа-канал цвета коэффициентом из [0, 1].
func WithOpacity(c color.RGBA, opacity float32) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(opacity * float32(c.A))
	return c
}

// Darken уменьшает яркость цвета, альфа не меняется.
func Darken(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
