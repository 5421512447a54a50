// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-prevent/internal/config"
	"go-prevent/internal/defs"
	"go-prevent/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var pauseShade = color.RGBA{0, 0, 0, 160}

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the game it wraps and draws it dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		// Возвращаемся без Exit/Enter, чтобы не сбросить партию
		s.stateMachine.current = s.previousState
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(NewMenuState(s.stateMachine))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), pauseShade, false)
	render.DrawText(screen, basicfont.Face7x13, "PAUSED - P to resume, Esc for menu", w/2-120, h/2, config.TextLightColor)
}

func (s *PauseState) SetLibrary(lib *defs.Library) {
	if r, ok := s.previousState.(LibraryReceiver); ok {
		r.SetLibrary(lib)
	}
}

func (s *PauseState) Exit() {
	s.previousState.Exit()
}
