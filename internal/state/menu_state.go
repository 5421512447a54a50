// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"

	"go-prevent/internal/config"
	"go-prevent/internal/level"
	"go-prevent/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

const (
	menuLeft = 80
	menuTop  = 120
)

// MenuState — выбор уровня
type MenuState struct {
	sm       *StateMachine
	selected int
	status   string
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) items() []string {
	return append(append([]string(nil), m.sm.ctx.Levels...), "Credits", "Quit")
}

func (m *MenuState) Update(deltaTime float64) {
	items := m.items()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		m.selected = (m.selected + len(items) - 1) % len(items)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		m.selected = (m.selected + 1) % len(items)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.choose(m.selected)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		m.sm.SetState(NewCreditsState(m.sm))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.sm.Quit()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		_, y := ebiten.CursorPosition()
		if i := (y - menuTop) / config.MenuItemGap; y >= menuTop && i < len(items) {
			m.selected = i
			m.choose(i)
		}
	}
}

func (m *MenuState) choose(i int) {
	levels := m.sm.ctx.Levels
	switch {
	case i < len(levels):
		lvl, err := level.Open(levels[i], m.sm.ctx.Library)
		if err != nil {
			m.sm.ctx.Logger.Error("failed to load level", "level", levels[i], "error", err)
			m.status = err.Error()
			return
		}
		m.sm.SetState(NewGameState(m.sm, lvl))
	case i == len(levels):
		m.sm.SetState(NewCreditsState(m.sm))
	default:
		m.sm.Quit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	render.DrawText(screen, face, "PREVENT", menuLeft, menuTop-60, config.TextLightColor)
	render.DrawText(screen, face, "Arrows/Enter or click to choose, C for credits, Esc to quit", menuLeft, menuTop-36, config.TextDimColor)

	for i, item := range m.items() {
		y := menuTop + i*config.MenuItemGap
		var clr color.Color = config.TextLightColor
		if i == m.selected {
			render.DrawText(screen, face, ">", menuLeft-16, y, config.MenuHighlight)
			clr = config.MenuHighlight
		}
		render.DrawText(screen, face, fmt.Sprintf("%d. %s", i+1, item), menuLeft, y, clr)
	}
	if m.status != "" {
		render.DrawText(screen, face, m.status, menuLeft, menuTop+len(m.items())*config.MenuItemGap+20, config.ExitColor)
	}
}

func (m *MenuState) Exit() {}
