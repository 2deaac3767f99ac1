// internal/system/camera.go
package system

import (
	"math"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/input"
	"go-arena-survival/pkg/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraSystem держит орбитальные углы камеры и каждый кадр пересчитывает
// её позицию вокруг игрока с нуля. Камера не отстаёт и не интерполируется:
// жёсткое следование.
type CameraSystem struct {
	ecs   *entity.ECS
	input input.Provider

	yaw   float32 // горизонтальный угол, не ограничен (тригонометрия периодична)
	pitch float32 // вертикальный угол, ограничен ±CameraMaxPitch

	position rl.Vector3
	target   rl.Vector3
}

func NewCameraSystem(ecs *entity.ECS, in input.Provider) *CameraSystem {
	return &CameraSystem{
		ecs:   ecs,
		input: in,
		pitch: 0.35, // стартовый наклон, чтобы арена была видна сверху
	}
}

func (s *CameraSystem) Update() {
	if s.input.Held(input.CameraLeft) {
		s.yaw += config.CameraRotateStep
	}
	if s.input.Held(input.CameraRight) {
		s.yaw -= config.CameraRotateStep
	}
	if s.input.Held(input.CameraUp) {
		s.pitch += config.CameraRotateStep
	}
	if s.input.Held(input.CameraDown) {
		s.pitch -= config.CameraRotateStep
	}
	s.pitch = utils.Clamp(s.pitch, -config.CameraMaxPitch, config.CameraMaxPitch)

	for id := range s.ecs.Players {
		p := s.ecs.Transforms[id].Position

		sinYaw := float32(math.Sin(float64(s.yaw)))
		cosYaw := float32(math.Cos(float64(s.yaw)))
		sinPitch := float32(math.Sin(float64(s.pitch)))
		cosPitch := float32(math.Cos(float64(s.pitch)))

		s.position = rl.NewVector3(
			p.X+config.CameraRadius*cosPitch*sinYaw,
			p.Y+config.CameraRadius*sinPitch+config.CameraHeight,
			p.Z+config.CameraRadius*cosPitch*cosYaw,
		)
		s.target = rl.NewVector3(p.X, p.Y+config.CameraTargetLift, p.Z)
	}
}

// Forward возвращает горизонтальный единичный вектор "вперёд от камеры".
// Наклон камеры на движение игрока не влияет.
func (s *CameraSystem) Forward() rl.Vector3 {
	return rl.NewVector3(
		-float32(math.Sin(float64(s.yaw))),
		0,
		-float32(math.Cos(float64(s.yaw))),
	)
}

// Right возвращает горизонтальный единичный вектор "вправо от камеры".
func (s *CameraSystem) Right() rl.Vector3 {
	f := s.Forward()
	return rl.NewVector3(-f.Z, 0, f.X)
}

func (s *CameraSystem) Yaw() float32   { return s.yaw }
func (s *CameraSystem) Pitch() float32 { return s.pitch }

// Pose возвращает позицию камеры и точку, на которую она смотрит.
func (s *CameraSystem) Pose() (position, target rl.Vector3) {
	return s.position, s.target
}

// Camera3D собирает rl.Camera3D для отрисовки текущего кадра.
func (s *CameraSystem) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   s.position,
		Target:     s.target,
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       55.0,
		Projection: rl.CameraPerspective,
	}
}
