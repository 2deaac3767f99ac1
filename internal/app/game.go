// internal/app/game.go
package app

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/input"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HealthStatus — качественная полоса здоровья для интерфейса.
type HealthStatus int

const (
	StatusHealthy HealthStatus = iota
	StatusCaution
	StatusCritical
)

func (s HealthStatus) String() string {
	switch s {
	case StatusCaution:
		return "CAUTION"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "HEALTHY"
	}
}

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	PhysicsSystem      *system.PhysicsSystem
	CombatSystem       *system.CombatSystem
	SpawnerSystem      *system.SpawnerSystem
	ParticleSystem     *system.ParticleSystem
	VisualEffectSystem *system.VisualEffectSystem
	CameraSystem       *system.CameraSystem
	PlayerID           types.EntityID
}

// NewGame initializes a new game instance. Сид 0 означает недетерминированный
// рандом (текущее время).
func NewGame(in input.Provider, seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(seed),
	}
	g.CameraSystem = system.NewCameraSystem(ecs, in)
	g.PhysicsSystem = system.NewPhysicsSystem(ecs, in, g.CameraSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, g.CameraSystem, dispatcher)
	g.SpawnerSystem = system.NewSpawnerSystem(ecs, g.Rng, dispatcher)
	g.ParticleSystem = system.NewParticleSystem(ecs, g.Rng, dispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	g.createPlayerEntity()
	g.createObstacles()
	g.CameraSystem.Update() // начальная поза камеры до первого кадра

	return g
}

// Update выполняет один кадр симуляции. Порядок фиксирован: кинематика
// игрока → спавн и ИИ врагов → бой → уборка погибших → частицы → эффекты →
// камера. Бой использует позицию ударной зоны, вычисленную по кинематике
// этого же кадра, а погибшие враги убираются до отрисовки.
func (g *Game) Update() {
	g.ECS.Frame++
	g.PhysicsSystem.Update()
	g.SpawnerSystem.Update()
	g.CombatSystem.Update()
	g.SpawnerSystem.SweepDead()
	g.ParticleSystem.Update()
	g.VisualEffectSystem.Update()
	g.CameraSystem.Update()
}

// PlayerHealth возвращает текущее здоровье игрока, [0, PlayerMaxHealth].
func (g *Game) PlayerHealth() int {
	if h, ok := g.ECS.Healths[g.PlayerID]; ok {
		return h.Value
	}
	return 0
}

// HealthStatus возвращает качественную полосу здоровья.
func (g *Game) HealthStatus() HealthStatus {
	h := g.PlayerHealth()
	switch {
	case h <= config.HealthCriticalThreshold:
		return StatusCritical
	case h <= config.HealthCautionThreshold:
		return StatusCaution
	default:
		return StatusHealthy
	}
}

// EnemyCount возвращает число живых врагов на арене.
func (g *Game) EnemyCount() int {
	return len(g.ECS.Enemies)
}

// Frame возвращает номер текущего кадра с начала игры.
func (g *Game) Frame() uint64 {
	return g.ECS.Frame
}

func (g *Game) createPlayerEntity() {
	id := g.ECS.NewEntity()
	g.ECS.Transforms[id] = &component.Transform{
		Position: rl.NewVector3(0, config.PlayerHalfHeight, 0),
		Scale:    1,
	}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Healths[id] = &component.Health{Value: config.PlayerMaxHealth, Max: config.PlayerMaxHealth}
	g.ECS.Players[id] = &component.Player{
		JumpsLeft: config.MaxJumps,
		Grounded:  true,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Shape:       component.ShapeCube,
		Color:       config.PlayerColor,
		HalfExtents: rl.NewVector3(config.PlayerHalfWidth, config.PlayerHalfHeight, config.PlayerHalfWidth),
		Opacity:     1,
	}
	g.PlayerID = id
}

func (g *Game) createObstacles() {
	for _, def := range defs.ArenaLayout {
		min := rl.NewVector3(def.Min[0], def.Min[1], def.Min[2])
		max := rl.NewVector3(def.Max[0], def.Max[1], def.Max[2])
		center := rl.Vector3Scale(rl.Vector3Add(min, max), 0.5)
		half := rl.Vector3Scale(rl.Vector3Subtract(max, min), 0.5)

		id := g.ECS.NewEntity()
		g.ECS.Transforms[id] = &component.Transform{Position: center, Scale: 1}
		g.ECS.Obstacles[id] = &component.Obstacle{
			Name: def.Name,
			Box:  rl.BoundingBox{Min: min, Max: max},
		}
		g.ECS.Renderables[id] = &component.Renderable{
			Shape:       component.ShapeCube,
			Color:       config.ObstacleColor,
			HalfExtents: half,
			Opacity:     1,
		}
	}
}
