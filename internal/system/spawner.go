// internal/system/spawner.go
package system

import (
	"log"
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
	"go-arena-survival/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpawnerSystem владеет жизненным циклом врагов: спавн по таймеру на
// случайном кольце вокруг игрока, преследование без обхода препятствий и
// уборка погибших в конце кадра.
type SpawnerSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	spawnTimer int
}

func NewSpawnerSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher) *SpawnerSystem {
	return &SpawnerSystem{ecs: ecs, rng: rng, dispatcher: dispatcher}
}

func (s *SpawnerSystem) Update() {
	playerPos, ok := s.playerPosition()
	if !ok {
		return
	}

	// Чистое преследование: горизонтальный единичный вектор к игроку,
	// умноженный на скорость. Враги свободно проходят друг сквозь друга.
	for id, enemy := range s.ecs.Enemies {
		if !enemy.Alive {
			continue
		}
		tr := s.ecs.Transforms[id]
		dir := geom.HorizontalDir(tr.Position, playerPos)
		tr.Position = rl.Vector3Add(tr.Position, rl.Vector3Scale(dir, enemy.Speed))
	}

	// Таймер тикает каждый кадр; при переполнении спавн откладывается,
	// пока живых врагов не станет меньше лимита.
	s.spawnTimer++
	if s.spawnTimer >= config.SpawnInterval && len(s.ecs.Enemies) < config.MaxEnemies {
		s.spawnEnemy(playerPos)
		s.spawnTimer = 0
	}
}

// SweepDead обрабатывает погибших врагов ровно один раз за кадр: эффект
// смерти по последней позиции, затем удаление из реестра. Вызывается после
// боевой системы и до отрисовки — кадр никогда не показывает удалённого
// врага.
func (s *SpawnerSystem) SweepDead() {
	var dead []types.EntityID
	for id, enemy := range s.ecs.Enemies {
		if !enemy.Alive {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		pos := s.ecs.Transforms[id].Position
		s.ecs.RemoveEntity(id)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyDied, Data: pos})
	}
}

func (s *SpawnerSystem) spawnEnemy(playerPos rl.Vector3) {
	def, ok := defs.EnemyLibrary[defs.DefaultChaserID]
	if !ok {
		log.Printf("SpawnerSystem: enemy definition not found for ID: %s", defs.DefaultChaserID)
		return
	}

	angle := s.rng.Angle()
	dist := s.rng.Range(config.SpawnMinRadius, config.SpawnMaxRadius)
	pos := rl.NewVector3(
		playerPos.X+dist*float32(math.Cos(float64(angle))),
		def.SpawnHeight,
		playerPos.Z+dist*float32(math.Sin(float64(angle))),
	)

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: pos, Scale: 1}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:      def.ID,
		Speed:      def.Speed,
		HalfExtent: def.HalfExtent,
		Alive:      true,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Shape:       component.ShapeCube,
		Color:       def.Visuals.Color,
		HalfExtents: rl.NewVector3(def.HalfExtent, def.HalfExtent, def.HalfExtent),
		Opacity:     1,
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

func (s *SpawnerSystem) playerPosition() (rl.Vector3, bool) {
	for id := range s.ecs.Players {
		return s.ecs.Transforms[id].Position, true
	}
	return rl.Vector3{}, false
}
