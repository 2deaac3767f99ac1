package system

import (
	"math"
	"testing"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// recordingListener копит полученные события для проверок.
type recordingListener struct {
	events []event.Event
}

func (l *recordingListener) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func newSpawnerWorld(seed int64) (*entity.ECS, *SpawnerSystem, *event.Dispatcher) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	spawner := NewSpawnerSystem(ecs, utils.NewPRNGService(seed), dispatcher)
	addPlayer(ecs, rl.NewVector3(0, config.PlayerHalfHeight, 0))
	return ecs, spawner, dispatcher
}

func TestFirstSpawnHappensOnIntervalFrame(t *testing.T) {
	ecs, spawner, _ := newSpawnerWorld(1)

	for frame := 1; frame < config.SpawnInterval; frame++ {
		spawner.Update()
		if len(ecs.Enemies) != 0 {
			t.Fatalf("enemy spawned at frame %d, want frame %d", frame, config.SpawnInterval)
		}
	}
	spawner.Update()
	if len(ecs.Enemies) != 1 {
		t.Fatalf("enemies after frame %d = %d, want 1", config.SpawnInterval, len(ecs.Enemies))
	}
}

func TestSpawnRingDistanceAndHeight(t *testing.T) {
	ecs, spawner, _ := newSpawnerWorld(7)
	playerPos := rl.NewVector3(0, config.PlayerHalfHeight, 0)

	for i := 0; i < 50; i++ {
		spawner.spawnEnemy(playerPos)
	}

	for id := range ecs.Enemies {
		pos := ecs.Transforms[id].Position
		dx := float64(pos.X - playerPos.X)
		dz := float64(pos.Z - playerPos.Z)
		dist := float32(math.Sqrt(dx*dx + dz*dz))
		if dist < config.SpawnMinRadius-1e-3 || dist >= config.SpawnMaxRadius+1e-3 {
			t.Errorf("spawn distance = %f, want in [%f, %f)", dist, float32(config.SpawnMinRadius), float32(config.SpawnMaxRadius))
		}
		if pos.Y != 0.4 {
			t.Errorf("spawn height = %f, want 0.4", pos.Y)
		}
	}
}

func TestSpawnCapDefersUntilSlotFrees(t *testing.T) {
	ecs, spawner, _ := newSpawnerWorld(3)

	for i := 0; i < config.MaxEnemies; i++ {
		addEnemy(ecs, rl.NewVector3(20, 0.4, float32(i)*3), 30)
	}

	// Таймер переполняется, но лимит держит популяцию.
	for i := 0; i < 3*config.SpawnInterval; i++ {
		spawner.Update()
		if len(ecs.Enemies) > config.MaxEnemies {
			t.Fatalf("enemy count %d exceeded cap %d", len(ecs.Enemies), config.MaxEnemies)
		}
	}

	// Освободившийся слот заполняется сразу: таймер уже переполнен.
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
		break
	}
	spawner.Update()
	if len(ecs.Enemies) != config.MaxEnemies {
		t.Errorf("enemies after slot freed = %d, want %d", len(ecs.Enemies), config.MaxEnemies)
	}
}

func TestEnemyChasesPlayerAtFixedSpeed(t *testing.T) {
	ecs, spawner, _ := newSpawnerWorld(5)
	id := addEnemy(ecs, rl.NewVector3(15, 0.4, 0), 30)

	spawner.Update()
	pos := ecs.Transforms[id].Position
	if absf(pos.X-14.95) > 1e-4 {
		t.Fatalf("enemy X after one frame = %f, want 14.95", pos.X)
	}
	if pos.Z != 0 || pos.Y != 0.4 {
		t.Fatalf("enemy drifted off the chase line: (%f, %f, %f)", pos.X, pos.Y, pos.Z)
	}

	// До касания тел: (15 - 0.9) / 0.05 = 282 кадра от старта.
	for frame := 2; frame <= 282; frame++ {
		spawner.Update()
	}
	gap := ecs.Transforms[id].Position.X - (config.PlayerHalfWidth + 0.4)
	if absf(gap) > 0.05 {
		t.Errorf("gap to contact after 282 frames = %f, want ~0", gap)
	}
}

func TestDeadEnemiesDoNotMove(t *testing.T) {
	ecs, spawner, _ := newSpawnerWorld(5)
	id := addEnemy(ecs, rl.NewVector3(15, 0.4, 0), 30)
	ecs.Enemies[id].Alive = false

	spawner.Update()
	if got := ecs.Transforms[id].Position.X; got != 15 {
		t.Errorf("dead enemy moved to X=%f, want 15", got)
	}
}

func TestSweepDeadRemovesAndAnnouncesOnce(t *testing.T) {
	ecs, spawner, dispatcher := newSpawnerWorld(9)
	listener := &recordingListener{}
	dispatcher.Subscribe(event.EnemyDied, listener)

	deadPos := rl.NewVector3(4, 0.4, -6)
	dead := addEnemy(ecs, deadPos, 30)
	ecs.Enemies[dead].Alive = false
	alive := addEnemy(ecs, rl.NewVector3(18, 0.4, 0), 30)

	spawner.SweepDead()
	if len(listener.events) != 1 {
		t.Fatalf("EnemyDied dispatched %d times, want 1", len(listener.events))
	}
	got, ok := listener.events[0].Data.(rl.Vector3)
	if !ok || got != deadPos {
		t.Errorf("EnemyDied position = %v, want %v", listener.events[0].Data, deadPos)
	}
	if _, exists := ecs.Enemies[dead]; exists {
		t.Error("dead enemy still registered after sweep")
	}
	if _, exists := ecs.Transforms[dead]; exists {
		t.Error("dead enemy transform not cleaned up")
	}
	if _, exists := ecs.Enemies[alive]; !exists {
		t.Error("living enemy was swept")
	}

	// Повторная уборка того же кадра ничего не дублирует.
	spawner.SweepDead()
	if len(listener.events) != 1 {
		t.Errorf("second sweep dispatched extra events: %d total", len(listener.events))
	}
}
