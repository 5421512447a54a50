// internal/termview/view.go
package termview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"go-prevent/internal/component"
	"go-prevent/internal/defs"
	"go-prevent/internal/level"
	"go-prevent/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

// Клетка терминала = один тайл, поэтому масштаб 1
const scale = 1

var (
	styleLand   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRock   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWater  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleEntry  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleExit   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTower  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleRoute  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Model is the editor state: a board, a cursor and the current route from the
// level start to its finish. It has no dependency on a live terminal.
type Model struct {
	Level  *level.Level
	Cursor grid.Tile
	Route  []grid.Tile
	Err    error

	paths  *grid.Pathfinder
	edits  map[grid.Tile]grid.Piece
	logger *slog.Logger
}

// NewModel places the cursor on the level start and computes the first route.
func NewModel(lvl *level.Level, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Model{
		Level:  lvl,
		Cursor: lvl.Start,
		paths:  grid.NewPathfinder(lvl.Board, scale, grid.WithLogger(logger)),
		edits:  make(map[grid.Tile]grid.Piece),
		logger: logger.With("component", "termview"),
	}
	m.recompute()
	return m
}

// Move shifts the cursor, clamped to the board.
func (m *Model) Move(dx, dy int) {
	w, h := m.Level.Board.Size()
	m.Cursor.X = min(max(m.Cursor.X+dx, 0), w-1)
	m.Cursor.Y = min(max(m.Cursor.Y+dy, 0), h-1)
}

// Toggle puts a rock under the cursor, or restores whatever was there before
// if the rock came from an earlier toggle. Entry and exit tiles are fixed.
func (m *Model) Toggle() bool {
	tile := m.Cursor
	if tile == m.Level.Start || tile == m.Level.Finish {
		return false
	}
	board := m.Level.Board
	if prev, ok := m.edits[tile]; ok {
		delete(m.edits, tile)
		if prev == nil {
			board.Remove(tile)
		} else {
			board.Set(tile, prev)
		}
	} else {
		m.edits[tile] = board.PieceAt(tile)
		board.Set(tile, component.NewTerrain(defs.TerrainRock))
	}
	m.recompute()
	return true
}

// Reset undoes every toggle.
func (m *Model) Reset() {
	if len(m.edits) == 0 {
		return
	}
	for tile, prev := range m.edits {
		if prev == nil {
			m.Level.Board.Remove(tile)
		} else {
			m.Level.Board.Set(tile, prev)
		}
	}
	clear(m.edits)
	m.recompute()
}

// Edits returns the number of tiles currently differing from the loaded map.
func (m *Model) Edits() int {
	return len(m.edits)
}

func (m *Model) recompute() {
	m.paths.Invalidate()
	path, err := m.paths.GetPath(m.Level.Start, m.Level.Finish)
	m.Err = err
	if err != nil {
		m.Route = nil
		if !errors.Is(err, grid.ErrNoPath) {
			m.logger.Error("route failed", "error", err)
		}
		return
	}
	m.Route = path.Tiles(scale)
	m.logger.Debug("route updated", "steps", len(m.Route), "edits", len(m.edits))
}

// Status is the one-line summary shown under the board.
func (m *Model) Status() string {
	if m.Err != nil {
		if errors.Is(m.Err, grid.ErrNoPath) {
			return fmt.Sprintf("%s %s  no path  edits: %d", m.Level.Name, m.Cursor, len(m.edits))
		}
		return fmt.Sprintf("%s %s  error: %v", m.Level.Name, m.Cursor, m.Err)
	}
	return fmt.Sprintf("%s %s  route: %d steps  edits: %d", m.Level.Name, m.Cursor, len(m.Route), len(m.edits))
}

// HandleKey applies a key press and reports whether the editor should quit.
func (m *Model) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		m.Move(0, -1)
	case tcell.KeyDown:
		m.Move(0, 1)
	case tcell.KeyLeft:
		m.Move(-1, 0)
	case tcell.KeyRight:
		m.Move(1, 0)
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			return true
		case ' ':
			m.Toggle()
		case 'r':
			m.Reset()
		case 'h':
			m.Move(-1, 0)
		case 'l':
			m.Move(1, 0)
		case 'k':
			m.Move(0, -1)
		case 'j':
			m.Move(0, 1)
		}
	}
	return false
}

// Draw renders the board, the route, the cursor and the status lines.
func (m *Model) Draw(screen tcell.Screen) {
	screen.Clear()
	board := m.Level.Board
	w, h := board.Size()

	onRoute := make(map[grid.Tile]bool, len(m.Route))
	for _, t := range m.Route {
		onRoute[t] = true
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tile := grid.Tile{X: x, Y: y}
			r, style := cell(board.PieceAt(tile))
			if onRoute[tile] && tile != m.Level.Finish {
				r, style = '*', styleRoute
			}
			if tile == m.Cursor {
				style = style.Reverse(true)
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
	drawString(screen, 0, h+1, m.Status(), styleStatus)
	drawString(screen, 0, h+2, "arrows/hjkl move  space rock  r reset  q quit", styleHelp)
}

func cell(p grid.Piece) (rune, tcell.Style) {
	switch piece := p.(type) {
	case *component.Terrain:
		switch piece.Type {
		case defs.TerrainLand:
			return '.', styleLand
		case defs.TerrainRock:
			return 'X', styleRock
		case defs.TerrainWater:
			return '~', styleWater
		case defs.TerrainEntry:
			return 'S', styleEntry
		case defs.TerrainExit:
			return 'F', styleExit
		}
	case *component.Tower:
		if piece.Name != "" {
			return unicode.ToUpper([]rune(piece.Name)[0]), styleTower
		}
		return 'T', styleTower
	}
	return ' ', tcell.StyleDefault
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run drives the editor on an initialized screen until the user quits or ctx
// is cancelled. The caller owns Init and Fini.
func Run(ctx context.Context, screen tcell.Screen, m *Model) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for {
		m.Draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if m.HandleKey(ev) {
				return nil
			}
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}
