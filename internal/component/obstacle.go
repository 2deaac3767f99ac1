// internal/component/obstacle.go
package component

import rl "github.com/gen2brain/raylib-go/raylib"

// Obstacle — статическое препятствие арены. Бокс задан в мировых
// координатах и не меняется за время жизни процесса.
type Obstacle struct {
	Name string
	Box  rl.BoundingBox
}
