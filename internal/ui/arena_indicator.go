// internal/ui/arena_indicator.go
package ui

import (
	"fmt"

	"go-arena-survival/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ArenaIndicator показывает число живых врагов и время выживания.
// Привязан к правому верхнему углу: X — правая граница текста.
type ArenaIndicator struct {
	X, Y     float32
	FontSize int32
}

func NewArenaIndicator(x, y float32) *ArenaIndicator {
	return &ArenaIndicator{X: x, Y: y, FontSize: 20}
}

// Draw отрисовывает индикатор на экране.
func (i *ArenaIndicator) Draw(enemies int, frame uint64) {
	seconds := frame / config.TargetFPS

	enemyText := fmt.Sprintf("ENEMIES %d/%d", enemies, config.MaxEnemies)
	timeText := fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)

	enemyWidth := rl.MeasureText(enemyText, i.FontSize)
	timeWidth := rl.MeasureText(timeText, i.FontSize)

	rl.DrawText(enemyText, int32(i.X)-enemyWidth, int32(i.Y), i.FontSize, toColor(config.HUDTextColor))
	rl.DrawText(timeText, int32(i.X)-timeWidth, int32(i.Y)+i.FontSize+6, i.FontSize, rl.Gray)
}
