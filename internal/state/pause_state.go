// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-arena-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// PauseState замораживает симуляцию, продолжая рисовать последний кадр
// игрового состояния под затемнением.
type PauseState struct {
	sm   *StateMachine
	prev *PlayState
}

func NewPauseState(sm *StateMachine, prev *PlayState) *PauseState {
	return &PauseState{sm: sm, prev: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.prev)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0,
		float32(config.ScreenWidth), float32(config.ScreenHeight),
		color.RGBA{0, 0, 0, 140}, false)
	text.Draw(screen, "PAUSED (P to resume)", basicfont.Face7x13,
		config.ScreenWidth/2-90, config.ScreenHeight/2, config.HUDTextColor)
}

func (s *PauseState) Exit() {}
