// pkg/render/board_renderer.go
package render

import (
	"image/color"
	"strconv"

	"go-prevent/internal/component"
	"go-prevent/internal/config"
	"go-prevent/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Frame is everything dynamic drawn on top of the board in one frame.
type Frame struct {
	Units    []*component.Unit
	Route    grid.Path
	Field    *grid.DistanceField // nil hides the overlay
	Hover    grid.Tile
	HasHover bool
}

type BoardRenderer struct {
	board      *grid.Board
	scale      int
	colors     MapColors
	fontFace   font.Face
	mapImage   *ebiten.Image // предрендеренная карта
	generation uint64
	rendered   bool
}

func NewBoardRenderer(board *grid.Board, scale int, colors MapColors) *BoardRenderer {
	w, h := board.Size()
	return &BoardRenderer{
		board:    board,
		scale:    scale,
		colors:   colors,
		fontFace: basicfont.Face7x13,
		mapImage: ebiten.NewImage(max(w*scale, 1), max(h*scale, 1)),
	}
}

// RenderMapImage redraws terrain and towers into the cached background.
func (r *BoardRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	for _, tile := range r.board.Tiles() {
		r.drawPiece(r.mapImage, tile, r.board.PieceAt(tile))
	}
	r.generation = r.board.Generation()
	r.rendered = true
}

func (r *BoardRenderer) Draw(screen *ebiten.Image, frame Frame) {
	// Фон перерисовываем только после изменения поля
	if !r.rendered || r.generation != r.board.Generation() {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)

	if frame.Field != nil {
		r.drawField(screen, frame.Field)
	}
	r.drawRoute(screen, frame.Route)
	for _, u := range frame.Units {
		r.drawUnit(screen, u)
	}
	if frame.HasHover && r.board.Contains(frame.Hover) {
		x, y := r.origin(frame.Hover)
		s := float32(r.scale)
		vector.StrokeRect(screen, x, y, s, s, r.colors.StrokeWidth, r.colors.HoverColor, false)
	}
}

func (r *BoardRenderer) origin(t grid.Tile) (float32, float32) {
	p := t.Origin(r.scale)
	return float32(p.X), float32(p.Y)
}

func (r *BoardRenderer) drawPiece(target *ebiten.Image, tile grid.Tile, piece grid.Piece) {
	x, y := r.origin(tile)
	s := float32(r.scale)
	switch p := piece.(type) {
	case *component.Terrain:
		vector.DrawFilledRect(target, x, y, s, s, r.colors.TerrainColor(p.Type), false)
	case *component.Tower:
		vector.DrawFilledRect(target, x, y, s, s, r.colors.LandColor, false)
		inset := float32(config.TowerInset)
		clr := r.colors.TowerColor(p.DefID)
		vector.DrawFilledRect(target, x+inset, y+inset, s-2*inset, s-2*inset, clr, false)
		vector.StrokeRect(target, x+inset, y+inset, s-2*inset, s-2*inset, r.colors.StrokeWidth, r.colors.TowerStroke, false)
	default:
		vector.DrawFilledRect(target, x, y, s, s, r.colors.EmptyColor, false)
	}
	vector.StrokeRect(target, x, y, s, s, 1, r.colors.GridLineColor, false)
}

func (r *BoardRenderer) drawField(screen *ebiten.Image, field *grid.DistanceField) {
	for _, tile := range r.board.Tiles() {
		d, ok := field.Distance(tile)
		if !ok {
			continue
		}
		label := strconv.Itoa(d)
		bounds := text.BoundString(r.fontFace, label)
		c := tile.Center(r.scale)
		text.Draw(screen, label, r.fontFace, c.X-bounds.Dx()/2, c.Y+bounds.Dy()/2, r.colors.FieldTextColor)
	}
}

func (r *BoardRenderer) drawRoute(screen *ebiten.Image, route grid.Path) {
	radius := float32(config.PathDotRadius)
	for _, p := range route {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, r.colors.PathColor, true)
	}
}

func (r *BoardRenderer) drawUnit(screen *ebiten.Image, u *component.Unit) {
	s := float32(r.scale)
	cx, cy := float32(u.Location.X), float32(u.Location.Y)
	radius := s * config.UnitRadiusFactor
	vector.DrawFilledCircle(screen, cx, cy, radius, r.colors.UnitColor, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1, r.colors.TowerStroke, true)

	barH := max(s/config.HealthBarHeightDivisor, 1)
	barY := cy - s/2
	vector.DrawFilledRect(screen, cx-s/2, barY, s, barH, r.colors.HealthBack, false)
	vector.DrawFilledRect(screen, cx-s/2, barY, s*float32(u.HealthFraction()), barH, r.colors.HealthColor, false)
}

// DrawText draws a string with the renderer's font, top-left anchored.
func (r *BoardRenderer) DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	DrawText(screen, r.fontFace, s, x, y, clr)
}

// DrawText draws s so that its bounding box starts at (x, y).
func DrawText(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Min.X, y-bounds.Min.Y, clr)
}
