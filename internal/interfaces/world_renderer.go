// internal/interfaces/world_renderer.go
package interfaces

import "github.com/hajimehoshi/ebiten/v2"

// WorldRenderer рисует мир симуляции на экран ebiten. Реализация живёт у
// клиента: состояния лишь решают, когда её вызывать.
type WorldRenderer interface {
	DrawWorld(screen *ebiten.Image)
}
