// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-arena-survival/internal/app"
	"go-arena-survival/internal/assets"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/input"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	seed := flag.Int64("seed", 0, "сид генератора случайных чисел, 0 — от текущего времени")
	enemiesPath := flag.String("enemies", "assets/enemies.json", "путь к определениям врагов")
	arenaPath := flag.String("arena", "assets/arena.json", "путь к расстановке препятствий")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	// При отсутствии файлов остаются встроенные определения.
	if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
		log.Printf("using built-in enemy definitions: %v", err)
	}
	if err := defs.LoadArenaLayout(*arenaPath); err != nil {
		log.Printf("using built-in arena layout: %v", err)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Arena Survival")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	models := assets.NewModelManager()
	models.LoadEnemyModels(defs.EnemyLibrary)
	defer models.Cleanup()

	g := app.NewGame(input.NewKeyboardRL(), *seed)
	renderSystem := system.NewRenderSystemRL(g.ECS, g.CombatSystem, models)
	healthIndicator := ui.NewPlayerHealthIndicator(20, 20)
	arenaIndicator := ui.NewArenaIndicator(config.ScreenWidth-20, 20)

	for !rl.WindowShouldClose() {
		g.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(
			config.BackgroundColor.R, config.BackgroundColor.G,
			config.BackgroundColor.B, config.BackgroundColor.A))

		renderSystem.Draw(g.CameraSystem.Camera3D())
		healthIndicator.Draw(g.PlayerHealth(), config.PlayerMaxHealth, g.HealthStatus().String())
		arenaIndicator.Draw(g.EnemyCount(), g.Frame())

		rl.EndDrawing()
	}
}
