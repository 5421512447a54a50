// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	game "go-prevent/internal/app"
	"go-prevent/internal/component"
	"go-prevent/internal/config"
	"go-prevent/internal/defs"
	"go-prevent/internal/level"
	"go-prevent/internal/ui"
	"go-prevent/pkg/grid"
	"go-prevent/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// contextMenu is the list of actions shown after clicking a tile.
type contextMenu struct {
	tile    grid.Tile
	x, y    int
	width   int
	options []game.MenuOption
}

func newContextMenu(tile grid.Tile, x, y int, options []game.MenuOption) *contextMenu {
	width := 0
	for _, o := range options {
		width = max(width, len(o.Label)*config.TextCharWidth+16)
	}
	return &contextMenu{tile: tile, x: x, y: y, width: width, options: options}
}

// hit returns the option index under (x, y), or -1.
func (m *contextMenu) hit(x, y int) int {
	if x < m.x || x >= m.x+m.width || y < m.y {
		return -1
	}
	i := (y - m.y) / config.MenuItemGap
	if i >= len(m.options) {
		return -1
	}
	return i
}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *game.Game
	renderer      *render.BoardRenderer
	fontFace      font.Face
	logger        *slog.Logger
	menu          *contextMenu
	showField     bool
	status        string
	lastClickTime time.Time

	lives *ui.LivesIndicator
	wave  *ui.WaveIndicator
	speed *ui.SpeedButton
	pause *ui.PauseButton
}

func NewGameState(sm *StateMachine, lvl *level.Level) *GameState {
	ctx := sm.Context()
	g := game.NewGame(lvl, ctx.Library, game.WithLogger(ctx.Logger), game.WithScale(ctx.Scale))
	face := basicfont.Face7x13

	// HUD под полем
	bw, bh := g.Board.Size()
	w, top := float32(bw*g.Scale), float32(bh*g.Scale)
	mid := top + config.HUDHeight/2
	return &GameState{
		sm:            sm,
		game:          g,
		renderer:      render.NewBoardRenderer(g.Board, g.Scale, render.DefaultMapColors()),
		fontFace:      face,
		logger:        ctx.Logger.With("component", "ui"),
		showField:     ctx.ShowField,
		lastClickTime: time.Now(),
		lives:         ui.NewLivesIndicator(w-560, mid, face),
		wave:          ui.NewWaveIndicator(int(w)-240, int(mid)-6, face),
		speed:         ui.NewSpeedButton(w-80, mid, 12, face),
		pause:         ui.NewPauseButton(w-35, mid, 10),
	}
}

func (g *GameState) Enter() {
	g.renderer.RenderMapImage()
	g.logger.Info("level started", "level", g.game.Level.Name, "waves", len(g.game.Level.Waves))
}

func (g *GameState) SetLibrary(lib *defs.Library) {
	g.game.SetLibrary(lib)
}

func (g *GameState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if g.menu != nil {
			g.menu = nil
			return
		}
		g.sm.SetState(NewMenuState(g.sm))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.showField = !g.showField
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if g.game.State().Over() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.sm.SetState(NewMenuState(g.sm))
		}
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && time.Since(g.lastClickTime) >= config.ClickCooldown {
		g.lastClickTime = time.Now()
		g.handleClick(ebiten.CursorPosition())
	}

	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	dt := time.Duration(deltaTime * float64(time.Second))
	for i := 0; i < g.speed.Multiplier(); i++ {
		if err := g.game.Update(dt); err != nil {
			g.status = "internal error, see log"
			return
		}
	}
}

func (g *GameState) handleClick(x, y int) {
	switch {
	case g.pause.IsClicked(x, y):
		g.pause.Press()
		g.menu = nil
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	case g.speed.IsClicked(x, y):
		g.speed.ToggleState()
		g.logger.Debug("game speed changed", "multiplier", g.speed.Multiplier())
		return
	}
	if g.menu != nil {
		menu := g.menu
		g.menu = nil
		if i := menu.hit(x, y); i >= 0 {
			g.apply(menu.tile, menu.options[i])
			return
		}
	}
	tile, ok := g.game.TileAt(x, y)
	if !ok {
		return
	}
	if opts := g.game.Menu(tile); len(opts) > 0 {
		g.menu = newContextMenu(tile, x, y, opts)
	}
}

func (g *GameState) apply(tile grid.Tile, opt game.MenuOption) {
	if !opt.Enabled {
		g.status = "Not enough score"
		return
	}
	err := g.game.Apply(tile, opt)
	switch {
	case err == nil:
		g.status = ""
	case errors.Is(err, game.ErrPathBlocked):
		g.status = "That would block the exit"
	case errors.Is(err, game.ErrTileOccupiedByUnit):
		g.status = "A unit is in the way"
	case errors.Is(err, game.ErrInsufficientFunds):
		g.status = "Not enough score"
	default:
		g.status = err.Error()
	}
	if err != nil {
		g.logger.Debug("action refused", "tile", tile, "action", opt.Label, "error", err)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	frame := render.Frame{Units: make([]*component.Unit, 0, len(g.game.ECS.Units))}
	for _, id := range g.game.ECS.UnitIDs() {
		frame.Units = append(frame.Units, g.game.ECS.Units[id])
	}
	if route, err := g.game.Route(); err == nil {
		frame.Route = route
	}
	if g.showField {
		frame.Field = g.game.DistanceField()
	}
	if g.menu != nil {
		frame.Hover, frame.HasHover = g.menu.tile, true
	} else {
		frame.Hover, frame.HasHover = g.game.TileAt(ebiten.CursorPosition())
	}
	g.renderer.Draw(screen, frame)

	g.drawHUD(screen)
	if g.menu != nil {
		g.drawMenu(screen)
	}
	if g.game.State().Over() {
		g.drawGameOver(screen)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	_, h := g.game.Board.Size()
	top := h * g.game.Scale
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), config.HUDHeight, config.HUDColor, false)

	state := g.game.State()
	wave, waves := g.game.WaveSystem.Progress()
	stats := fmt.Sprintf("Score: %d  Lives: %d  Wave: %d/%d  Units: %d",
		state.Score, state.Lives, min(wave+1, waves), waves, g.game.ECS.ActiveUnits())
	render.DrawText(screen, g.fontFace, stats, 10, top+config.TextOffsetY+4, config.TextLightColor)

	g.lives.Draw(screen, state.Lives, config.MaxLives)
	g.wave.Draw(screen, min(wave+1, waves), waves)
	g.speed.Draw(screen)
	g.pause.Draw(screen)

	hint := "click: build/upgrade/sell  D: field  P: pause  Esc: menu"
	if g.status != "" {
		render.DrawText(screen, g.fontFace, g.status, 10, top+config.TextOffsetY+22, config.ExitColor)
	} else {
		render.DrawText(screen, g.fontFace, hint, 10, top+config.TextOffsetY+22, config.TextDimColor)
	}
}

func (g *GameState) drawMenu(screen *ebiten.Image) {
	m := g.menu
	height := float32(len(m.options) * config.MenuItemGap)
	vector.DrawFilledRect(screen, float32(m.x), float32(m.y), float32(m.width), height, config.HUDColor, false)
	vector.StrokeRect(screen, float32(m.x), float32(m.y), float32(m.width), height, 1, config.TextDimColor, false)

	cx, cy := ebiten.CursorPosition()
	hovered := m.hit(cx, cy)
	for i, opt := range m.options {
		y := m.y + i*config.MenuItemGap
		if i == hovered {
			vector.DrawFilledRect(screen, float32(m.x), float32(y), float32(m.width), config.MenuItemGap, config.MenuHighlight, false)
		}
		clr := config.TextLightColor
		if !opt.Enabled {
			clr = config.TextDimColor
		}
		render.DrawText(screen, g.fontFace, opt.Label, m.x+8, y+(config.MenuItemGap-13)/2, clr)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	msg := "YOU WON"
	if g.game.State().Phase == component.Lost {
		msg = "YOU LOST"
	}
	msg = strings.Join([]string{msg, fmt.Sprintf("score %d", g.game.State().Score), "Enter: menu"}, " - ")
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	render.DrawText(screen, g.fontFace, msg, w/2-len(msg)*config.TextCharWidth/2, h/2, config.TextLightColor)
}

func (g *GameState) Exit() {}
