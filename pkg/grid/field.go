// pkg/grid/field.go
package grid

const unreached int32 = -1

// DistanceField maps every tile reachable from a finish tile to its hop count
// from that finish. It is valid for one finish and one board snapshot only.
type DistanceField struct {
	finish        Tile
	width, height int
	dist          []int32
	reached       int
	complete      bool
}

func newDistanceField(finish Tile, width, height int) *DistanceField {
	f := &DistanceField{
		finish: finish,
		width:  width,
		height: height,
		dist:   make([]int32, width*height),
	}
	for i := range f.dist {
		f.dist[i] = unreached
	}
	return f
}

func (f *DistanceField) inBounds(t Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < f.width && t.Y < f.height
}

func (f *DistanceField) Finish() Tile {
	return f.finish
}

// Distance returns the hop count from t to the finish. ok is false when t is
// unreachable or off the board.
func (f *DistanceField) Distance(t Tile) (d int, ok bool) {
	if !f.inBounds(t) {
		return 0, false
	}
	v := f.dist[t.Y*f.width+t.X]
	if v == unreached {
		return 0, false
	}
	return int(v), true
}

func (f *DistanceField) Contains(t Tile) bool {
	_, ok := f.Distance(t)
	return ok
}

// Len returns the number of tiles recorded in the field.
func (f *DistanceField) Len() int {
	return f.reached
}

// Complete reports whether the flood fill ran until the frontier emptied, as
// opposed to stopping early once a requested start tile was found.
func (f *DistanceField) Complete() bool {
	return f.complete
}

// Size returns the board dimensions the field was built over.
func (f *DistanceField) Size() (int, int) {
	return f.width, f.height
}

func (f *DistanceField) set(t Tile, d int32) {
	i := t.Y*f.width + t.X
	if f.dist[i] == unreached {
		f.reached++
	}
	f.dist[i] = d
}

// BuildDistanceField flood-fills outward from finish over traversable tiles
// until every reachable tile has been recorded.
func BuildDistanceField(finish Tile, board BoardView) *DistanceField {
	return buildField(finish, board, nil)
}

// BuildDistanceFieldUntil stops expanding as soon as start has been recorded.
// The resulting field is exact for every tile it contains, but it is not
// Complete unless the fill also exhausted the reachable region.
func BuildDistanceFieldUntil(finish, start Tile, board BoardView) *DistanceField {
	return buildField(finish, board, &start)
}

func buildField(finish Tile, board BoardView, stopAt *Tile) *DistanceField {
	width, height := board.Size()
	f := newDistanceField(finish, width, height)
	if !f.inBounds(finish) {
		f.complete = true
		return f
	}

	// The finish is the goal, not a transit tile, so it is seeded regardless
	// of its own traversability.
	f.set(finish, 0)
	if stopAt != nil && *stopAt == finish {
		return f
	}

	frontier := []Tile{finish}
	var next []Tile
	for len(frontier) > 0 {
		next = next[:0]
		for _, tile := range frontier {
			nd := f.dist[tile.Y*f.width+tile.X] + 1
			for _, d := range Directions {
				n := tile.Neighbor(d)
				if !f.inBounds(n) || !Traversable(board, n) {
					continue
				}
				cur := f.dist[n.Y*f.width+n.X]
				if cur != unreached && cur <= nd {
					continue
				}
				f.set(n, nd)
				next = append(next, n)
			}
		}
		if stopAt != nil && f.Contains(*stopAt) {
			return f
		}
		frontier, next = next, frontier
	}
	f.complete = true
	return f
}
