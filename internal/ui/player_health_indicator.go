// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-arena-survival/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthBarWidth  = 220
	HealthBarHeight = 22
	HealthFontSize  = 20
)

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	Position rl.Vector2
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		Position: rl.NewVector2(x, y),
	}
}

// Draw рисует полосу здоровья. Цвет заполнения определяется качественной
// полосой: зелёный — здоров, жёлтый — осторожно, красный — критично.
func (i *PlayerHealthIndicator) Draw(health, maxHealth int, status string) {
	x := int32(i.Position.X)
	y := int32(i.Position.Y)

	var fill rl.Color
	switch {
	case health <= config.HealthCriticalThreshold:
		fill = toColor(config.CriticalColor)
	case health <= config.HealthCautionThreshold:
		fill = toColor(config.CautionColor)
	default:
		fill = toColor(config.HealthyColor)
	}

	fillWidth := int32(float32(HealthBarWidth) * float32(health) / float32(maxHealth))

	rl.DrawRectangle(x, y, HealthBarWidth, HealthBarHeight, rl.Black)
	rl.DrawRectangle(x, y, fillWidth, HealthBarHeight, fill)
	rl.DrawRectangleLines(x, y, HealthBarWidth, HealthBarHeight, rl.White)

	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	rl.DrawText(healthText, x+HealthBarWidth+10, y, HealthFontSize, rl.White)
	rl.DrawText(status, x, y+HealthBarHeight+6, HealthFontSize, fill)
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
