// internal/system/physics.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/input"
	"go-arena-survival/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhysicsSystem интегрирует кинематику игрока: гравитация, прыжки,
// движение относительно камеры и столкновения со статическими
// препятствиями по каждой оси отдельно (скольжение вдоль стен).
type PhysicsSystem struct {
	ecs    *entity.ECS
	input  input.Provider
	camera *CameraSystem
}

func NewPhysicsSystem(ecs *entity.ECS, in input.Provider, camera *CameraSystem) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs, input: in, camera: camera}
}

func (s *PhysicsSystem) Update() {
	for id, player := range s.ecs.Players {
		tr := s.ecs.Transforms[id]
		vel := s.ecs.Velocities[id]

		// Прыжок по фронту нажатия, не по удержанию. Пока остались прыжки,
		// срабатывает и в воздухе — двойной прыжок.
		if s.input.JumpPressed() && player.JumpsLeft > 0 {
			vel.Linear.Y = config.JumpImpulse
			player.JumpsLeft--
			player.Jumping = true
			player.Grounded = false
		}

		// Гравитация действует безусловно, прижим к земле обнулит её ниже.
		vel.Linear.Y -= config.Gravity

		dir := s.moveDirection()
		half := rl.NewVector3(config.PlayerHalfWidth, config.PlayerHalfHeight, config.PlayerHalfWidth)

		// Оси X и Z проверяются независимо: при упоре в препятствие по
		// одной оси движение по другой сохраняется.
		cand := tr.Position
		cand.X += dir.X * config.PlayerSpeed
		if !s.blocked(cand, half) {
			tr.Position.X = cand.X
		}
		cand = tr.Position
		cand.Z += dir.Z * config.PlayerSpeed
		if !s.blocked(cand, half) {
			tr.Position.Z = cand.Z
		}

		// Вертикаль: отклонённое движение вниз означает приземление на
		// препятствие.
		player.Grounded = false
		cand = tr.Position
		cand.Y += vel.Linear.Y
		if s.blocked(cand, half) {
			if vel.Linear.Y < 0 {
				s.land(player, vel)
			}
		} else {
			tr.Position.Y = cand.Y
		}

		// Прижим к полу арены.
		if tr.Position.Y <= config.PlayerHalfHeight {
			tr.Position.Y = config.PlayerHalfHeight
			s.land(player, vel)
		}
	}
}

// moveDirection суммирует базисные векторы камеры по удерживаемым клавишам
// и нормализует результат. Нет клавиш — нулевой вектор, движения нет.
func (s *PhysicsSystem) moveDirection() rl.Vector3 {
	dir := rl.Vector3{}
	if s.input.Held(input.MoveForward) {
		dir = rl.Vector3Add(dir, s.camera.Forward())
	}
	if s.input.Held(input.MoveBackward) {
		dir = rl.Vector3Subtract(dir, s.camera.Forward())
	}
	if s.input.Held(input.MoveRight) {
		dir = rl.Vector3Add(dir, s.camera.Right())
	}
	if s.input.Held(input.MoveLeft) {
		dir = rl.Vector3Subtract(dir, s.camera.Right())
	}
	if dir.X == 0 && dir.Z == 0 {
		return dir
	}
	return rl.Vector3Normalize(dir)
}

func (s *PhysicsSystem) blocked(center, half rl.Vector3) bool {
	box := geom.BoxAt(center, half)
	for _, obs := range s.ecs.Obstacles {
		if geom.Overlaps(box, obs.Box) {
			return true
		}
	}
	return false
}

// land фиксирует контакт с опорой: скорость обнуляется, счётчик прыжков
// восстанавливается до максимума.
func (s *PhysicsSystem) land(player *component.Player, vel *component.Velocity) {
	vel.Linear.Y = 0
	player.Jumping = false
	player.Grounded = true
	player.JumpsLeft = config.MaxJumps
}
