// internal/system/combat.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CombatSystem разрешает контактный бой. Две независимые проверки за кадр:
// ударная зона игрока против тела врага (игрок наносит урон) и тело врага
// против тела игрока (игрок получает урон с перезарядкой). Можно стоять
// внутри врага и получать урон, не нанося его, и наоборот.
type CombatSystem struct {
	ecs        *entity.ECS
	camera     *CameraSystem
	dispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, camera *CameraSystem, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, camera: camera, dispatcher: dispatcher}
}

func (s *CombatSystem) Update() {
	for pid, player := range s.ecs.Players {
		tr := s.ecs.Transforms[pid]
		health := s.ecs.Healths[pid]

		// Таймер перезарядки урона уменьшается на единицу за кадр до нуля.
		if player.DamageCooldown > 0 {
			player.DamageCooldown--
		}

		hitbox := s.PlayerHitbox(tr.Position)
		body := geom.BoxAt(tr.Position, rl.NewVector3(
			config.PlayerHalfWidth, config.PlayerHalfHeight, config.PlayerHalfWidth))

		for eid, enemy := range s.ecs.Enemies {
			if !enemy.Alive {
				continue
			}
			enemyBox := geom.CubeAt(s.ecs.Transforms[eid].Position, enemy.HalfExtent)

			// Урон врагу от ударной зоны.
			if geom.Overlaps(hitbox, enemyBox) {
				enemyHealth := s.ecs.Healths[eid]
				enemyHealth.Value -= config.HitboxDamage
				if enemyHealth.Value < 0 {
					enemyHealth.Value = 0
				}
				s.ecs.DamageFlashes[eid] = &component.DamageFlash{FramesLeft: config.DamageFlashFrames}
				if enemyHealth.Value <= 0 {
					// Отложенное удаление: сущность уберёт SweepDead в конце кадра.
					enemy.Alive = false
				}
			}

			// Контактный урон игроку — только при нулевой перезарядке.
			if player.DamageCooldown == 0 && geom.Overlaps(body, enemyBox) {
				health.Value -= config.EnemyContactDamage
				if health.Value < 0 {
					health.Value = 0
				}
				player.DamageCooldown = config.DamageCooldownFrames
				s.ecs.DamageFlashes[pid] = &component.DamageFlash{FramesLeft: config.DamageFlashFrames}
				s.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: health.Value})
			}
		}
	}
}

// PlayerHitbox возвращает ударную зону: бокс чуть крупнее тела, вынесенный
// на HitboxForwardOffset вдоль текущего направления камеры.
func (s *CombatSystem) PlayerHitbox(playerPos rl.Vector3) rl.BoundingBox {
	center := rl.Vector3Add(playerPos, rl.Vector3Scale(s.camera.Forward(), config.HitboxForwardOffset))
	return geom.CubeAt(center, config.HitboxHalfExtent)
}
