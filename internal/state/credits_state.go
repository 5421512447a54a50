// internal/state/credits_state.go
package state

import (
	"strings"

	"go-prevent/internal/config"
	"go-prevent/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*CreditsState)(nil)

type CreditsState struct {
	sm *StateMachine
}

func NewCreditsState(sm *StateMachine) *CreditsState {
	return &CreditsState{sm: sm}
}

func (s *CreditsState) Enter() {}

func (s *CreditsState) Update(deltaTime float64) {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *CreditsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := strings.Split(strings.TrimRight(s.sm.ctx.Library.Credits, "\n"), "\n")
	for i, line := range lines {
		render.DrawText(screen, face, line, menuLeft, menuTop+i*18, config.TextLightColor)
	}
	render.DrawText(screen, face, "Press any key", menuLeft, menuTop+(len(lines)+2)*18, config.TextDimColor)
}

func (s *CreditsState) Exit() {}
