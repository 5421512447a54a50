package level

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-prevent/internal/component"
	"go-prevent/internal/defs"
	"go-prevent/pkg/grid"
)

func parse(t *testing.T, lines ...string) (*Level, error) {
	t.Helper()
	return Parse(strings.NewReader(strings.Join(lines, "\n")), defs.Default())
}

func TestParse(t *testing.T) {
	lvl, err := parse(t,
		"12:3",
		"S.X",
		"~1F",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, h := lvl.Board.Size(); w != 3 || h != 2 {
		t.Errorf("expected 3x2 board, got %dx%d", w, h)
	}
	if lvl.Start != (grid.Tile{X: 0, Y: 0}) || lvl.Finish != (grid.Tile{X: 2, Y: 1}) {
		t.Errorf("unexpected start %s / finish %s", lvl.Start, lvl.Finish)
	}
	if len(lvl.Waves) != 2 || lvl.Waves[0][0] != "soldier" || lvl.Waves[0][1] != "humvee" || lvl.Waves[1][0] != "tank" {
		t.Errorf("unexpected waves %v", lvl.Waves)
	}
	if lvl.Units() != 3 {
		t.Errorf("expected 3 units, got %d", lvl.Units())
	}

	tests := []struct {
		tile        grid.Tile
		traversable bool
	}{
		{grid.Tile{X: 0, Y: 0}, true},
		{grid.Tile{X: 1, Y: 0}, true},
		{grid.Tile{X: 2, Y: 0}, false},
		{grid.Tile{X: 0, Y: 1}, false},
		{grid.Tile{X: 1, Y: 1}, false},
		{grid.Tile{X: 2, Y: 1}, true},
	}
	for _, tc := range tests {
		if got := lvl.Board.IsPassable(tc.tile); got != tc.traversable {
			t.Errorf("%s: expected traversable=%v, got %v", tc.tile, tc.traversable, got)
		}
	}
	tower, ok := lvl.Board.PieceAt(grid.Tile{X: 1, Y: 1}).(*component.Tower)
	if !ok || tower.DefID != "light" {
		t.Errorf("expected a light tower at (1,1), got %#v", lvl.Board.PieceAt(grid.Tile{X: 1, Y: 1}))
	}
}

func TestParse_RaggedRowsAndUnknownChars(t *testing.T) {
	lvl, err := parse(t,
		"1",
		"S....",
		"F?",
		"",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, h := lvl.Board.Size(); w != 5 || h != 2 {
		t.Errorf("expected 5x2 board, got %dx%d", w, h)
	}
	if lvl.Board.IsOccupied(grid.Tile{X: 1, Y: 1}) {
		t.Error("unknown character should leave the tile empty")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{"empty", []string{""}, ErrEmpty},
		{"waves only", []string{"111"}, ErrEmpty},
		{"no start", []string{"1", "..F"}, ErrMissingStart},
		{"no finish", []string{"1", "S.."}, ErrMissingFinish},
		{"two starts", []string{"1", "S.S", "..F"}, ErrDuplicateTile},
		{"bad wave digit", []string{"17", "S.F"}, defs.ErrUnknownUnit},
		{"bad wave char", []string{"1a", "S.F"}, defs.ErrUnknownUnit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.lines...)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEmbeddedLevels(t *testing.T) {
	names := Names()
	if len(names) != 3 {
		t.Fatalf("expected 3 embedded levels, got %v", names)
	}
	lib := defs.Default()
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadEmbedded(name, lib)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lvl.Name != name {
				t.Errorf("expected name %s, got %s", name, lvl.Name)
			}
			if len(lvl.Waves) == 0 {
				t.Error("expected at least one wave")
			}
			field := grid.BuildDistanceField(lvl.Finish, lvl.Board)
			if !field.Contains(lvl.Start) {
				t.Error("exit must be reachable from the entry")
			}
		})
	}
}

func TestLoadAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.map")
	if err := os.WriteFile(path, []byte("1:2\r\nS..F\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	lvl, err := Open(path, defs.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.Name != "custom" || lvl.Finish != (grid.Tile{X: 3, Y: 0}) {
		t.Errorf("unexpected level %s with finish %s", lvl.Name, lvl.Finish)
	}

	if _, err := Open("level1", defs.Default()); err != nil {
		t.Errorf("embedded level should open by name: %v", err)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "nope.map"), defs.Default()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
