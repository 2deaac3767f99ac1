package system

import (
	"testing"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestJumpParabolaReturnsToGround(t *testing.T) {
	ecs := entity.NewECS()
	in := newStubInput()
	camera := NewCameraSystem(ecs, in)
	phys := NewPhysicsSystem(ecs, in, camera)
	id := addPlayer(ecs, rl.NewVector3(0, config.PlayerHalfHeight, 0))

	in.jump = true
	phys.Update()
	in.jump = false

	player := ecs.Players[id]
	if player.Grounded {
		t.Fatal("player still grounded right after jump")
	}
	if player.JumpsLeft != config.MaxJumps-1 {
		t.Fatalf("JumpsLeft after jump = %d, want %d", player.JumpsLeft, config.MaxJumps-1)
	}

	var peak float32
	landedAt := 0
	for frame := 2; frame <= 60; frame++ {
		phys.Update()
		y := ecs.Transforms[id].Position.Y
		if y > peak {
			peak = y
		}
		if player.Grounded {
			landedAt = frame
			break
		}
	}

	// Симметричный подъём и падение при постоянной гравитации:
	// 2×(0.3/0.015) ≈ 40 кадров.
	if landedAt < 38 || landedAt > 41 {
		t.Errorf("landed at frame %d, want ~40", landedAt)
	}
	if peak < 3.5 {
		t.Errorf("jump peak = %f, want > 3.5", peak)
	}
	if ecs.Transforms[id].Position.Y != config.PlayerHalfHeight {
		t.Errorf("Y after landing = %f, want %f", ecs.Transforms[id].Position.Y, float32(config.PlayerHalfHeight))
	}
	if player.JumpsLeft != config.MaxJumps {
		t.Errorf("JumpsLeft after landing = %d, want %d", player.JumpsLeft, config.MaxJumps)
	}
}

func TestDoubleJumpConsumesBothJumps(t *testing.T) {
	ecs := entity.NewECS()
	in := newStubInput()
	camera := NewCameraSystem(ecs, in)
	phys := NewPhysicsSystem(ecs, in, camera)
	id := addPlayer(ecs, rl.NewVector3(0, config.PlayerHalfHeight, 0))
	player := ecs.Players[id]

	in.jump = true
	phys.Update() // первый прыжок
	in.jump = false
	for i := 0; i < 5; i++ {
		phys.Update()
	}

	in.jump = true
	phys.Update() // второй прыжок в воздухе
	in.jump = false
	if player.JumpsLeft != 0 {
		t.Fatalf("JumpsLeft after double jump = %d, want 0", player.JumpsLeft)
	}
	velAfterSecond := ecs.Velocities[id].Linear.Y

	// Третье нажатие в воздухе игнорируется.
	in.jump = true
	phys.Update()
	in.jump = false
	if player.JumpsLeft != 0 {
		t.Errorf("JumpsLeft after ignored third press = %d, want 0", player.JumpsLeft)
	}
	got := ecs.Velocities[id].Linear.Y
	want := velAfterSecond - config.Gravity
	if absf(got-want) > 1e-5 {
		t.Errorf("velocity after ignored press = %f, want %f (gravity only)", got, want)
	}
}

func TestNoInputNoHorizontalMovement(t *testing.T) {
	ecs := entity.NewECS()
	in := newStubInput()
	camera := NewCameraSystem(ecs, in)
	phys := NewPhysicsSystem(ecs, in, camera)
	id := addPlayer(ecs, rl.NewVector3(3, config.PlayerHalfHeight, -2))

	for i := 0; i < 30; i++ {
		phys.Update()
	}
	pos := ecs.Transforms[id].Position
	if pos.X != 3 || pos.Z != -2 {
		t.Errorf("player drifted to (%f, %f), want (3, -2)", pos.X, pos.Z)
	}
}

func TestObstacleBlocksAxisAndAllowsSliding(t *testing.T) {
	ecs := entity.NewECS()
	in := newStubInput()
	camera := NewCameraSystem(ecs, in)
	phys := NewPhysicsSystem(ecs, in, camera)
	id := addPlayer(ecs, rl.NewVector3(0, config.PlayerHalfHeight, 0))

	// Длинная стена справа от игрока (по +X при нулевом угле камеры).
	addObstacle(ecs, rl.NewVector3(2, 0, -50), rl.NewVector3(3, 4, 50))

	// Вправо и вперёд по диагонали: X упирается, Z продолжает скользить.
	in.held[input.MoveRight] = true
	in.held[input.MoveForward] = true
	for i := 0; i < 60; i++ {
		phys.Update()
	}

	pos := ecs.Transforms[id].Position
	if pos.X > 2-config.PlayerHalfWidth {
		t.Errorf("player X = %f, penetrated wall at 2-%f", pos.X, float32(config.PlayerHalfWidth))
	}
	if pos.Z > -3 {
		t.Errorf("player Z = %f, expected to keep sliding forward past -3", pos.Z)
	}
}

func TestLandingOnObstacleResetsJumps(t *testing.T) {
	ecs := entity.NewECS()
	in := newStubInput()
	camera := NewCameraSystem(ecs, in)
	phys := NewPhysicsSystem(ecs, in, camera)
	id := addPlayer(ecs, rl.NewVector3(0, 6, 0))
	player := ecs.Players[id]
	player.Grounded = false
	player.JumpsLeft = 0

	// Платформа под игроком, верх на Y=1.5.
	addObstacle(ecs, rl.NewVector3(-2, 0, -2), rl.NewVector3(2, 1.5, 2))

	for i := 0; i < 120 && !player.Grounded; i++ {
		phys.Update()
	}

	if !player.Grounded {
		t.Fatal("player never landed on the obstacle")
	}
	if player.JumpsLeft != config.MaxJumps {
		t.Errorf("JumpsLeft after obstacle landing = %d, want %d", player.JumpsLeft, config.MaxJumps)
	}
	if ecs.Velocities[id].Linear.Y != 0 {
		t.Errorf("vertical velocity after landing = %f, want 0", ecs.Velocities[id].Linear.Y)
	}
	// Ноги игрока над верхом платформы, без проваливания.
	feet := ecs.Transforms[id].Position.Y - config.PlayerHalfHeight
	if feet < 1.5-1e-4 {
		t.Errorf("player feet at %f, sank below platform top 1.5", feet)
	}
	if feet > 1.9 {
		t.Errorf("player feet at %f, hovering too far above platform top 1.5", feet)
	}
}

func TestGravityAccumulatesWhileAirborne(t *testing.T) {
	ecs := entity.NewECS()
	in := newStubInput()
	camera := NewCameraSystem(ecs, in)
	phys := NewPhysicsSystem(ecs, in, camera)
	id := addPlayer(ecs, rl.NewVector3(0, 20, 0))
	ecs.Players[id].Grounded = false

	phys.Update()
	v1 := ecs.Velocities[id].Linear.Y
	phys.Update()
	v2 := ecs.Velocities[id].Linear.Y

	if absf((v1-v2)-config.Gravity) > 1e-6 {
		t.Errorf("per-frame velocity delta = %f, want %f", v1-v2, float32(config.Gravity))
	}
}
