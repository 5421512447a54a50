// pkg/grid/board.go
package grid

// Piece is anything that can occupy a tile.
type Piece interface {
	Traversable() bool
}

// BoardView is the read-only capability the pathfinder needs from the game
// state. Tiles outside [0,width)x[0,height) must report unoccupied.
type BoardView interface {
	IsOccupied(t Tile) bool
	PieceAt(t Tile) Piece
	Size() (width, height int)
}

// Traversable reports whether a unit may pass through t.
func Traversable(view BoardView, t Tile) bool {
	if !view.IsOccupied(t) {
		return false
	}
	p := view.PieceAt(t)
	return p != nil && p.Traversable()
}

// Board is a fixed-size mutable grid of pieces stored row-major.
type Board struct {
	width, height int
	pieces        []Piece
	generation    uint64
}

func NewBoard(width, height int) *Board {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Board{
		width:  width,
		height: height,
		pieces: make([]Piece, width*height),
	}
}

func (b *Board) Size() (int, int) {
	return b.width, b.height
}

func (b *Board) Contains(t Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < b.width && t.Y < b.height
}

func (b *Board) index(t Tile) int {
	return t.Y*b.width + t.X
}

func (b *Board) IsOccupied(t Tile) bool {
	return b.Contains(t) && b.pieces[b.index(t)] != nil
}

// PieceAt returns the piece on t, or nil.
func (b *Board) PieceAt(t Tile) Piece {
	if !b.Contains(t) {
		return nil
	}
	return b.pieces[b.index(t)]
}

// Set places p on t, replacing any previous occupant. It reports false when t
// is off the board.
func (b *Board) Set(t Tile, p Piece) bool {
	if !b.Contains(t) {
		return false
	}
	b.pieces[b.index(t)] = p
	b.generation++
	return true
}

// Remove clears t and returns the previous occupant.
func (b *Board) Remove(t Tile) Piece {
	if !b.Contains(t) {
		return nil
	}
	i := b.index(t)
	prev := b.pieces[i]
	b.pieces[i] = nil
	b.generation++
	return prev
}

// IsPassable is shorthand for Traversable(b, t).
func (b *Board) IsPassable(t Tile) bool {
	return Traversable(b, t)
}

// Generation increments on every mutation.
func (b *Board) Generation() uint64 {
	return b.generation
}

// Tiles returns every occupied tile in row-major order.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, 0, len(b.pieces))
	for i, p := range b.pieces {
		if p == nil {
			continue
		}
		tiles = append(tiles, Tile{X: i % b.width, Y: i / b.width})
	}
	return tiles
}

// blockedView overlays extra obstacles on a view without touching it.
type blockedView struct {
	BoardView
	blocked map[Tile]struct{}
}

type blockedPiece struct{}

func (blockedPiece) Traversable() bool { return false }

// Blocked returns a view of board in which tiles are reported as
// non-traversable. The underlying board is not modified.
func Blocked(board BoardView, tiles ...Tile) BoardView {
	set := make(map[Tile]struct{}, len(tiles))
	for _, t := range tiles {
		set[t] = struct{}{}
	}
	return &blockedView{BoardView: board, blocked: set}
}

func (v *blockedView) IsOccupied(t Tile) bool {
	if _, ok := v.blocked[t]; ok {
		return true
	}
	return v.BoardView.IsOccupied(t)
}

func (v *blockedView) PieceAt(t Tile) Piece {
	if _, ok := v.blocked[t]; ok {
		return blockedPiece{}
	}
	return v.BoardView.PieceAt(t)
}
