// internal/system/particles.go
package system

import (
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
	pkgutils "go-arena-survival/pkg/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ParticleSystem создаёт вспышку частиц на месте гибели врага и ведёт их
// жизненный цикл: интеграция скорости, гравитация, кувыркание, затухание
// масштаба и прозрачности, удаление по истечении срока жизни. Частицы ни с
// чем не сталкиваются.
type ParticleSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewParticleSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *ParticleSystem {
	ps := &ParticleSystem{ecs: ecs, rng: rng}
	dispatcher.Subscribe(event.EnemyDied, ps)
	return ps
}

// OnEvent запускает вспышку по событию гибели врага.
func (s *ParticleSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDied {
		return
	}
	if pos, ok := e.Data.(rl.Vector3); ok {
		s.Burst(pos)
	}
}

// Burst создаёт ровно ParticlesPerBurst частиц в указанной точке. Азимут
// равномерен в [0, 2π), возвышение — в [-π/2, π/2]; вертикальная
// компонента скорости берётся по модулю, начальное движение вниз
// исключено.
func (s *ParticleSystem) Burst(origin rl.Vector3) {
	for i := 0; i < config.ParticlesPerBurst; i++ {
		azimuth := float64(s.rng.Angle())
		elevation := float64(s.rng.Range(-math.Pi/2, math.Pi/2))

		vel := rl.NewVector3(
			float32(math.Cos(elevation)*math.Cos(azimuth))*config.ParticleSpread,
			float32(math.Abs(math.Sin(elevation)))*config.ParticleSpread,
			float32(math.Cos(elevation)*math.Sin(azimuth))*config.ParticleSpread,
		)

		id := s.ecs.NewEntity()
		s.ecs.Transforms[id] = &component.Transform{Position: origin, Scale: config.ParticleBaseScale}
		s.ecs.Velocities[id] = &component.Velocity{Linear: vel}
		s.ecs.Particles[id] = &component.Particle{Lifetime: config.ParticleLifetime}
		s.ecs.Renderables[id] = &component.Renderable{
			Shape:       component.ShapeCube,
			Color:       config.ParticleColor,
			HalfExtents: rl.NewVector3(0.5, 0.5, 0.5), // умножается на Transform.Scale
			Opacity:     1,
		}
	}
}

func (s *ParticleSystem) Update() {
	var expired []types.EntityID
	for id, p := range s.ecs.Particles {
		tr := s.ecs.Transforms[id]
		vel := s.ecs.Velocities[id]

		tr.Position = rl.Vector3Add(tr.Position, vel.Linear)
		vel.Linear.Y -= config.ParticleGravity

		// Кувыркание чисто визуальное, физического смысла не несёт.
		tr.Rotation.X += config.ParticleTumblePitch
		tr.Rotation.Y += config.ParticleTumbleYaw
		tr.Rotation.Z += config.ParticleTumbleRoll

		p.Age++
		if p.Age >= p.Lifetime {
			expired = append(expired, id)
			continue
		}

		// Линейное затухание к полу по доле оставшейся жизни.
		remaining := 1 - float32(p.Age)/float32(p.Lifetime)
		tr.Scale = pkgutils.Lerp(config.ParticleMinScale, config.ParticleBaseScale, remaining)
		s.ecs.Renderables[id].Opacity = pkgutils.Lerp(config.ParticleMinOpacity, 1, remaining)
	}
	for _, id := range expired {
		s.ecs.RemoveEntity(id)
	}
}
