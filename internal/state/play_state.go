// internal/state/play_state.go
package state

import (
	"fmt"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// PlayState — обычный игровой режим: симуляция тикает каждый кадр.
type PlayState struct {
	sm       *StateMachine
	sim      interfaces.Simulation
	renderer interfaces.WorldRenderer
}

func NewPlayState(sm *StateMachine, sim interfaces.Simulation, renderer interfaces.WorldRenderer) *PlayState {
	return &PlayState{sm: sm, sim: sim, renderer: renderer}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	s.sim.Update()
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.DrawWorld(screen)

	hud := fmt.Sprintf("HP %d/%d   enemies %d/%d   frame %d",
		s.sim.PlayerHealth(), config.PlayerMaxHealth,
		s.sim.EnemyCount(), config.MaxEnemies, s.sim.Frame())
	text.Draw(screen, hud, basicfont.Face7x13, 10, 24, config.HUDTextColor)
}

func (s *PlayState) Exit() {}
