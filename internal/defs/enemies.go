// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Health      int     `json:"health"`
	Speed       float32 `json:"speed"`        // units per frame
	HalfExtent  float32 `json:"half_extent"`  // half size of the collision box
	SpawnHeight float32 `json:"spawn_height"` // fixed Y at spawn
	Visuals     Visuals `json:"visuals"`
}

// DefaultChaserID — единственный тип врага в базовой поставке.
const DefaultChaserID = "ENEMY_CHASER"

// defaultEnemyLibrary возвращает встроенные определения. Они действуют,
// пока LoadEnemyDefinitions не заменит их данными из JSON.
func defaultEnemyLibrary() map[string]EnemyDefinition {
	return map[string]EnemyDefinition{
		DefaultChaserID: {
			ID:          DefaultChaserID,
			Name:        "Chaser",
			Health:      30,
			Speed:       0.05,
			HalfExtent:  0.4,
			SpawnHeight: 0.4,
			Visuals:     Visuals{Color: color.RGBA{170, 40, 40, 255}},
		},
	}
}
