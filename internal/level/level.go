// internal/level/level.go
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go-prevent/internal/component"
	"go-prevent/internal/defs"
	"go-prevent/pkg/grid"
)

var (
	ErrEmpty         = errors.New("level: empty map")
	ErrMissingStart  = errors.New("level: no entry tile (S)")
	ErrMissingFinish = errors.New("level: no exit tile (F)")
	ErrDuplicateTile = errors.New("level: more than one entry or exit")
)

// Level is a parsed map: the board with its terrain and pre-placed towers,
// the entry and exit tiles, and the waves of unit IDs to dispense.
type Level struct {
	Name   string
	Board  *grid.Board
	Start  grid.Tile
	Finish grid.Tile
	Waves  [][]string
}

// Units returns the total number of units across all waves.
func (l *Level) Units() int {
	n := 0
	for _, w := range l.Waves {
		n += len(w)
	}
	return n
}

// Load reads a level from a file on disk.
func Load(path string, lib *defs.Library) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer f.Close()

	lvl, err := Parse(f, lib)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return lvl, nil
}

// Parse reads the map format: one line of ':'-separated waves, then one line
// per board row.
func Parse(r io.Reader, lib *defs.Library) (*Level, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return nil, ErrEmpty
	}

	waves, err := parseWaves(lines[0], lib)
	if err != nil {
		return nil, err
	}
	lvl, err := parseBoard(lines[1:], lib)
	if err != nil {
		return nil, err
	}
	lvl.Waves = waves
	return lvl, nil
}

func parseWaves(line string, lib *defs.Library) ([][]string, error) {
	var waves [][]string
	for i, field := range strings.Split(strings.TrimSpace(line), ":") {
		wave := make([]string, 0, len(field))
		for _, code := range field {
			unit, err := lib.WaveUnit(code)
			if err != nil {
				return nil, fmt.Errorf("wave %d: %w", i+1, err)
			}
			wave = append(wave, unit.ID)
		}
		if len(wave) > 0 {
			waves = append(waves, wave)
		}
	}
	return waves, nil
}

func parseBoard(rows []string, lib *defs.Library) (*Level, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	lvl := &Level{Board: grid.NewBoard(width, len(rows))}

	var hasStart, hasFinish bool
	for y, row := range rows {
		for x, c := range row {
			tile := grid.Tile{X: x, Y: y}
			switch c {
			case '.':
				lvl.Board.Set(tile, component.NewTerrain(defs.TerrainLand))
			case 'X':
				lvl.Board.Set(tile, component.NewTerrain(defs.TerrainRock))
			case '~':
				lvl.Board.Set(tile, component.NewTerrain(defs.TerrainWater))
			case 'S':
				if hasStart {
					return nil, fmt.Errorf("%w: second S at %s", ErrDuplicateTile, tile)
				}
				lvl.Board.Set(tile, component.NewTerrain(defs.TerrainEntry))
				lvl.Start, hasStart = tile, true
			case 'F':
				if hasFinish {
					return nil, fmt.Errorf("%w: second F at %s", ErrDuplicateTile, tile)
				}
				lvl.Board.Set(tile, component.NewTerrain(defs.TerrainExit))
				lvl.Finish, hasFinish = tile, true
			case '1', '2', '3':
				def, err := lib.MapTower(c)
				if err != nil {
					return nil, fmt.Errorf("tile %s: %w", tile, err)
				}
				lvl.Board.Set(tile, component.NewTower(def))
			}
			// Anything else leaves the tile empty, which blocks units.
		}
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasFinish {
		return nil, ErrMissingFinish
	}
	return lvl, nil
}
