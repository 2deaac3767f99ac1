// internal/system/render.go
package system

import (
	"image/color"

	"go-arena-survival/internal/assets"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RenderSystemRL рисует сцену средствами raylib. Симуляция отрисовкой не
// владеет: система только читает ECS и позу камеры текущего кадра.
type RenderSystemRL struct {
	ecs    *entity.ECS
	combat *CombatSystem
	models *assets.ModelManager // может быть nil, тогда только примитивы
}

func NewRenderSystemRL(ecs *entity.ECS, combat *CombatSystem, models *assets.ModelManager) *RenderSystemRL {
	return &RenderSystemRL{ecs: ecs, combat: combat, models: models}
}

func (s *RenderSystemRL) Draw(cam rl.Camera3D) {
	rl.BeginMode3D(cam)

	rl.DrawPlane(rl.NewVector3(0, 0, 0),
		rl.NewVector2(config.ArenaExtent*2, config.ArenaExtent*2), toRL(config.FloorColor))
	rl.DrawGrid(int32(config.ArenaExtent*2), 1)

	for id, rend := range s.ecs.Renderables {
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}

		col := render.WithOpacity(rend.Color, rend.Opacity)
		if _, flashed := s.ecs.DamageFlashes[id]; flashed {
			col = config.FlashColor
		}
		rlCol := toRL(col)

		scale := tr.Scale
		if scale == 0 {
			scale = 1
		}
		size := rl.Vector3Scale(rend.HalfExtents, 2*scale)

		// Для врагов с загруженной моделью примитив подменяется ей.
		if enemy, isEnemy := s.ecs.Enemies[id]; isEnemy && s.models != nil {
			if model, ok := s.models.GetModel(enemy.DefID); ok {
				rl.DrawModel(model, tr.Position, enemy.HalfExtent*2*scale, rlCol)
				continue
			}
		}

		switch rend.Shape {
		case component.ShapeSphere:
			rl.DrawSphere(tr.Position, rend.HalfExtents.X*scale, rlCol)
		default:
			if tr.Rotation == (rl.Vector3{}) {
				rl.DrawCubeV(tr.Position, size, rlCol)
			} else {
				rl.PushMatrix()
				rl.Translatef(tr.Position.X, tr.Position.Y, tr.Position.Z)
				rl.Rotatef(tr.Rotation.Y*rl.Rad2deg, 0, 1, 0)
				rl.Rotatef(tr.Rotation.X*rl.Rad2deg, 1, 0, 0)
				rl.Rotatef(tr.Rotation.Z*rl.Rad2deg, 0, 0, 1)
				rl.DrawCubeV(rl.Vector3{}, size, rlCol)
				rl.PopMatrix()
			}
		}
	}

	// Ударная зона игрока — полупрозрачный каркас.
	for id := range s.ecs.Players {
		hb := s.combat.PlayerHitbox(s.ecs.Transforms[id].Position)
		center := rl.Vector3Scale(rl.Vector3Add(hb.Min, hb.Max), 0.5)
		size := rl.Vector3Subtract(hb.Max, hb.Min)
		rl.DrawCubeWiresV(center, size, toRL(config.HitboxColor))
	}

	rl.EndMode3D()
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
