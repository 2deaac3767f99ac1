// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary = defaultEnemyLibrary()

// ArenaLayout holds the static obstacle boxes of the arena.
var ArenaLayout = defaultArenaLayout()

// LoadEnemyDefinitions reads the enemy configuration file and replaces the
// built-in EnemyLibrary with its contents.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	if len(enemyDefs) == 0 {
		return fmt.Errorf("enemy definitions file %s is empty", path)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}

// LoadArenaLayout reads the arena configuration file and replaces the
// built-in obstacle layout.
func LoadArenaLayout(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read arena layout file: %w", err)
	}

	var layout []ObstacleDefinition
	if err := json.Unmarshal(file, &layout); err != nil {
		return fmt.Errorf("failed to unmarshal arena layout: %w", err)
	}

	ArenaLayout = layout
	return nil
}
