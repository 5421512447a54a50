// pkg/grid/path.go
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPath means the finish cannot be reached from the start under the
	// current board. Callers are expected to recover from it.
	ErrNoPath = errors.New("grid: no path")

	// ErrInconsistentField means a distance field disagrees with itself or
	// with the query it was used for. It signals a defect, not a board state.
	ErrInconsistentField = errors.New("grid: inconsistent distance field")
)

// FieldError describes where path reconstruction found no strictly closer
// neighbor.
type FieldError struct {
	Tile     Tile
	Distance int
	Reason   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("grid: inconsistent distance field at %s (distance %d): %s", e.Tile, e.Distance, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInconsistentField
}

// Path is an ordered list of waypoints. It starts with the first step away
// from the start tile and ends at the finish tile's center.
type Path []Point

// Reconstruct walks downhill through field from start to finish. Among equally
// close neighbors the first in Directions order wins.
func Reconstruct(field *DistanceField, start, finish Tile, scale int) (Path, error) {
	if start == finish {
		return Path{finish.Center(scale)}, nil
	}
	if field.Finish() != finish {
		return nil, &FieldError{Tile: finish, Reason: fmt.Sprintf("field was built for finish %s", field.Finish())}
	}

	current := start
	currentDist, ok := field.Distance(current)
	if !ok {
		return nil, ErrNoPath
	}

	path := make(Path, 0, currentDist)
	for current != finish {
		best := current
		bestDist := currentDist
		for _, d := range Directions {
			n := current.Neighbor(d)
			nd, ok := field.Distance(n)
			if !ok {
				continue
			}
			if nd < bestDist {
				best = n
				bestDist = nd
			}
		}
		if best == current {
			return nil, &FieldError{Tile: current, Distance: currentDist, Reason: "no neighbor is closer to the finish"}
		}
		path = append(path, best.Center(scale))
		current = best
		currentDist = bestDist
	}
	return path, nil
}

// Tiles converts waypoints back to the tiles they mark.
func (p Path) Tiles(scale int) []Tile {
	tiles := make([]Tile, len(p))
	for i, pt := range p {
		tiles[i] = TileAt(pt, scale)
	}
	return tiles
}

// First returns the next waypoint.
func (p Path) First() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0], true
}
