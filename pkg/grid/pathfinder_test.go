package grid

import (
	"errors"
	"testing"
)

func TestPathfinder_CachesPaths(t *testing.T) {
	b := boardFromLayout(
		".....",
		".....",
	)
	p := NewPathfinder(b, 16, WithLogger(quietLogger()))
	finish := Tile{4, 0}

	first, err := p.GetPath(Tile{0, 1}, finish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.GetPath(Tile{0, 1}, finish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("cached path differs: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cached path differs at %d: %v vs %v", i, first, second)
		}
	}

	if _, err := p.GetPath(Tile{1, 1}, finish); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := p.Stats()
	if stats.Hits != 1 || stats.Misses != 2 {
		t.Errorf("expected 1 hit and 2 misses, got %+v", stats)
	}
	if stats.FieldBuilds != 1 {
		t.Errorf("expected one field shared across starts, got %d builds", stats.FieldBuilds)
	}
}

func TestPathfinder_ReturnsCopies(t *testing.T) {
	b := boardFromLayout(".....")
	p := NewPathfinder(b, 1, WithLogger(quietLogger()))

	path, err := p.GetPath(Tile{0, 0}, Tile{4, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path[0] = Point{X: 99, Y: 99}

	again, err := p.GetPath(Tile{0, 0}, Tile{4, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again[0] != (Point{X: 1, Y: 0}) {
		t.Errorf("caller mutation leaked into cache: %v", again)
	}
}

func TestPathfinder_InvalidateRecomputes(t *testing.T) {
	b := boardFromLayout(
		".....",
		".....",
	)
	p := NewPathfinder(b, 1, WithLogger(quietLogger()))
	start, finish := Tile{0, 0}, Tile{4, 0}

	path, err := p.GetPath(start, finish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 4 {
		t.Fatalf("expected straight path of 4, got %v", path)
	}

	b.Set(Tile{2, 0}, testPiece(false))
	p.Invalidate()

	path, err = p.GetPath(start, finish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 6 {
		t.Errorf("expected detour of 6, got %v", path)
	}
	if got := p.Stats().FieldBuilds; got != 2 {
		t.Errorf("expected field rebuilt after invalidation, got %d builds", got)
	}
}

func TestPathfinder_NoPath(t *testing.T) {
	b := boardFromLayout(
		"..#..",
		"..#..",
	)
	p := NewPathfinder(b, 1, WithLogger(quietLogger()))

	for i := 0; i < 2; i++ {
		path, err := p.GetPath(Tile{0, 0}, Tile{4, 1})
		if !errors.Is(err, ErrNoPath) {
			t.Fatalf("attempt %d: expected ErrNoPath, got %v", i, err)
		}
		if path != nil {
			t.Fatalf("attempt %d: expected nil path, got %v", i, path)
		}
	}
	if got := p.Stats().Hits; got != 1 {
		t.Errorf("expected the failure to be cached, got %d hits", got)
	}

	b.Remove(Tile{2, 1})
	b.Set(Tile{2, 1}, testPiece(true))
	p.Invalidate()
	if _, err := p.GetPath(Tile{0, 0}, Tile{4, 1}); err != nil {
		t.Errorf("expected a path once the wall opened, got %v", err)
	}
}

func TestPathfinder_StartEqualsFinish(t *testing.T) {
	b := boardFromLayout("...")
	p := NewPathfinder(b, 10, WithLogger(quietLogger()))

	path, err := p.GetPath(Tile{1, 0}, Tile{1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 1 || path[0] != (Point{X: 15, Y: 5}) {
		t.Errorf("expected the finish center only, got %v", path)
	}
	if got := p.Stats().FieldBuilds; got != 0 {
		t.Errorf("expected no field build, got %d", got)
	}
}

func TestPathfinder_DetectsUninvalidatedMutation(t *testing.T) {
	b := boardFromLayout(
		".....",
		".....",
	)
	p := NewPathfinder(b, 1, WithLogger(quietLogger()))
	start, finish := Tile{0, 0}, Tile{4, 0}

	if _, err := p.GetPath(start, finish); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutate without calling Invalidate.
	b.Set(Tile{1, 0}, testPiece(false))

	path, err := p.GetPath(start, finish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tile := range path.Tiles(1) {
		if tile == (Tile{1, 0}) {
			t.Fatalf("stale path walks through the new wall: %v", path)
		}
	}
}

func TestPathfinder_FinishChange(t *testing.T) {
	b := boardFromLayout(".....")
	p := NewPathfinder(b, 1, WithLogger(quietLogger()))

	if _, err := p.GetPath(Tile{2, 0}, Tile{4, 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := p.GetPath(Tile{2, 0}, Tile{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Tile{{1, 0}, {0, 0}}
	got := path.Tiles(1)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPathfinder_MatchesField(t *testing.T) {
	b := boardFromLayout(
		"........",
		".######.",
		"......#.",
		"#####.#.",
		"........",
	)
	finish := Tile{0, 4}
	p := NewPathfinder(b, 1, WithLogger(quietLogger()))
	field := BuildDistanceField(finish, b)

	for _, start := range b.Tiles() {
		d, ok := field.Distance(start)
		path, err := p.GetPath(start, finish)
		switch {
		case start == finish:
			continue
		case !ok:
			if !errors.Is(err, ErrNoPath) {
				t.Errorf("from %s: expected ErrNoPath, got %v", start, err)
			}
		case err != nil:
			t.Errorf("from %s: unexpected error %v", start, err)
		case len(path) != d:
			t.Errorf("from %s: expected %d waypoints, got %d", start, d, len(path))
		}
	}
}
