package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/input"
	"go-arena-survival/internal/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// stubInput — скриптуемый провайдер ввода для тестов.
type stubInput struct {
	held map[input.Action]bool
	jump bool
}

func newStubInput() *stubInput {
	return &stubInput{held: make(map[input.Action]bool)}
}

func (s *stubInput) Held(a input.Action) bool { return s.held[a] }
func (s *stubInput) JumpPressed() bool        { return s.jump }

func addPlayer(ecs *entity.ECS, pos rl.Vector3) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos, Scale: 1}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Healths[id] = &component.Health{Value: config.PlayerMaxHealth, Max: config.PlayerMaxHealth}
	ecs.Players[id] = &component.Player{JumpsLeft: config.MaxJumps, Grounded: true}
	return id
}

func addEnemy(ecs *entity.ECS, pos rl.Vector3, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos, Scale: 1}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Enemies[id] = &component.Enemy{
		DefID:      "ENEMY_CHASER",
		Speed:      0.05,
		HalfExtent: 0.4,
		Alive:      true,
	}
	return id
}

func addObstacle(ecs *entity.ECS, min, max rl.Vector3) types.EntityID {
	id := ecs.NewEntity()
	ecs.Obstacles[id] = &component.Obstacle{
		Name: "test_obstacle",
		Box:  rl.BoundingBox{Min: min, Max: max},
	}
	return id
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
