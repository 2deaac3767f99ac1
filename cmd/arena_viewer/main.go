// cmd/arena_viewer/main.go
//
// Диагностический 2D-вид арены сверху. Гоняет то же самое ядро симуляции,
// что и основной клиент, но рисует его средствами ebiten: удобно смотреть
// на спавн, преследование и коллизии без 3D-камеры.
package main

import (
	"flag"
	"image/color"
	"log"

	"go-arena-survival/internal/app"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/input"
	"go-arena-survival/internal/state"
	"go-arena-survival/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// pixelsPerUnit — масштаб вида сверху.
const pixelsPerUnit = 14.0

// keyboardEbiten — провайдер ввода поверх клавиатуры ebiten, та же
// раскладка, что у основного клиента.
type keyboardEbiten struct{}

func (keyboardEbiten) Held(a input.Action) bool {
	switch a {
	case input.MoveForward:
		return ebiten.IsKeyPressed(ebiten.KeyW)
	case input.MoveBackward:
		return ebiten.IsKeyPressed(ebiten.KeyS)
	case input.MoveLeft:
		return ebiten.IsKeyPressed(ebiten.KeyA)
	case input.MoveRight:
		return ebiten.IsKeyPressed(ebiten.KeyD)
	case input.CameraLeft:
		return ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case input.CameraRight:
		return ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case input.CameraUp:
		return ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	case input.CameraDown:
		return ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	}
	return false
}

func (keyboardEbiten) JumpPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// overheadView рисует мир сверху, с центром на игроке.
type overheadView struct {
	game *app.Game
}

func (v *overheadView) DrawWorld(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	playerPos := v.game.ECS.Transforms[v.game.PlayerID].Position

	toScreen := func(p rl.Vector3) (float32, float32) {
		return float32(config.ScreenWidth)/2 + (p.X-playerPos.X)*pixelsPerUnit,
			float32(config.ScreenHeight)/2 + (p.Z-playerPos.Z)*pixelsPerUnit
	}

	// Препятствия.
	obstacleFill := render.Darken(config.ObstacleColor, 0.8)
	for _, obs := range v.game.ECS.Obstacles {
		x0, y0 := toScreen(obs.Box.Min)
		x1, y1 := toScreen(obs.Box.Max)
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, obstacleFill, true)
	}

	// Враги и частицы.
	for id, rend := range v.game.ECS.Renderables {
		tr, ok := v.game.ECS.Transforms[id]
		if !ok {
			continue
		}
		if _, isObstacle := v.game.ECS.Obstacles[id]; isObstacle {
			continue
		}

		col := rend.Color
		if _, flashed := v.game.ECS.DamageFlashes[id]; flashed {
			col = config.FlashColor
		}
		col = render.WithOpacity(col, rend.Opacity)

		cx, cy := toScreen(tr.Position)
		radius := rend.HalfExtents.X * tr.Scale * pixelsPerUnit
		vector.DrawFilledCircle(screen, cx, cy, radius, col, true)
	}

	// Ударная зона игрока — каркасный прямоугольник.
	hb := v.game.CombatSystem.PlayerHitbox(playerPos)
	x0, y0 := toScreen(hb.Min)
	x1, y1 := toScreen(hb.Max)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1.5, color.RGBA{240, 240, 240, 180}, true)
}

// ViewerGame прокидывает цикл ebiten в машину состояний.
type ViewerGame struct {
	sm *state.StateMachine
}

func (v *ViewerGame) Update() error {
	v.sm.Update()
	return nil
}

func (v *ViewerGame) Draw(screen *ebiten.Image) {
	v.sm.Draw(screen)
}

func (v *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "сид генератора случайных чисел, 0 — от текущего времени")
	flag.Parse()

	if err := defs.LoadEnemyDefinitions("assets/enemies.json"); err != nil {
		log.Printf("using built-in enemy definitions: %v", err)
	}
	if err := defs.LoadArenaLayout("assets/arena.json"); err != nil {
		log.Printf("using built-in arena layout: %v", err)
	}

	game := app.NewGame(keyboardEbiten{}, *seed)
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game, &overheadView{game: game}))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Survival | Overhead Viewer")
	if err := ebiten.RunGame(&ViewerGame{sm: sm}); err != nil {
		log.Fatal(err)
	}
}
