// internal/state/menu_state.go
package state

import (
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран. Симуляция не тикает, пока игрок не начал.
type MenuState struct {
	sm       *StateMachine
	sim      interfaces.Simulation
	renderer interfaces.WorldRenderer
}

func NewMenuState(sm *StateMachine, sim interfaces.Simulation, renderer interfaces.WorldRenderer) *MenuState {
	return &MenuState{sm: sm, sim: sim, renderer: renderer}
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewPlayState(s.sm, s.sim, s.renderer))
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "ARENA SURVIVAL", basicfont.Face7x13,
		config.ScreenWidth/2-50, config.ScreenHeight/2-20, config.HUDTextColor)
	text.Draw(screen, "WASD move, Space jump, arrows camera", basicfont.Face7x13,
		config.ScreenWidth/2-125, config.ScreenHeight/2+4, config.HUDTextColor)
	text.Draw(screen, "press Enter to start", basicfont.Face7x13,
		config.ScreenWidth/2-65, config.ScreenHeight/2+24, config.HUDTextColor)
}

func (s *MenuState) Exit() {}
