// pkg/grid/tile.go
package grid

import "fmt"

// Tile is a single grid cell addressed by column X and row Y.
type Tile struct {
	X, Y int
}

// Point is a pixel-space coordinate.
type Point struct {
	X, Y int
}

// Direction is one of the four axis-aligned steps between tiles.
type Direction int

const (
	West Direction = iota
	East
	North
	South
)

// Directions is the fixed neighbor evaluation order. Flood fill and path
// reconstruction both walk it, so ties always resolve West, East, North, South.
var Directions = [4]Direction{West, East, North, South}

var directionOffsets = [4]Tile{
	West:  {X: -1, Y: 0},
	East:  {X: 1, Y: 0},
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
}

func (d Direction) String() string {
	switch d {
	case West:
		return "west"
	case East:
		return "east"
	case North:
		return "north"
	case South:
		return "south"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Offset returns the unit step for d.
func (d Direction) Offset() Tile {
	return directionOffsets[d]
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

// Neighbor returns the tile one step away in direction d.
func (t Tile) Neighbor(d Direction) Tile {
	return t.Add(directionOffsets[d])
}

// Neighbors returns the four adjacent tiles in Directions order.
func (t Tile) Neighbors() [4]Tile {
	var out [4]Tile
	for i, d := range Directions {
		out[i] = t.Neighbor(d)
	}
	return out
}

// Add возвращает сумму двух тайлов
func (t Tile) Add(other Tile) Tile {
	return Tile{X: t.X + other.X, Y: t.Y + other.Y}
}

// Subtract возвращает разность двух тайлов
func (t Tile) Subtract(other Tile) Tile {
	return Tile{X: t.X - other.X, Y: t.Y - other.Y}
}

// Distance is the Manhattan distance, a lower bound on the hop count between
// two tiles on an obstacle-free grid.
func (t Tile) Distance(to Tile) int {
	return abs(t.X-to.X) + abs(t.Y-to.Y)
}

// Origin returns the top-left pixel of the tile.
func (t Tile) Origin(scale int) Point {
	return Point{X: t.X * scale, Y: t.Y * scale}
}

// Center returns the pixel center of the tile. Waypoints are tile centers.
func (t Tile) Center(scale int) Point {
	half := scale / 2
	return Point{X: t.X*scale + half, Y: t.Y*scale + half}
}

// TileAt returns the tile containing pixel p.
func TileAt(p Point, scale int) Tile {
	return Tile{X: floorDiv(p.X, scale), Y: floorDiv(p.Y, scale)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
