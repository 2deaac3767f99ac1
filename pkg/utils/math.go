// pkg/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp ограничивает значение диапазоном [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt ограничивает целое значение диапазоном [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
