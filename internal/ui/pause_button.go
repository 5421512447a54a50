// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"go-prevent/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует две полоски паузы в HUD
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Color         color.RGBA
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size, Color: config.PauseColor}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	size := b.Size * clickPulse(b.LastClickTime)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	top := b.Y - height/2

	// Левый
	vector.DrawFilledRect(screen, b.X-width-spacing/2, top, width, height, b.Color, false)
	vector.StrokeRect(screen, b.X-width-spacing/2, top, width, height, 1, config.TextLightColor, false)
	// Правый
	vector.DrawFilledRect(screen, b.X+spacing/2, top, width, height, b.Color, false)
	vector.StrokeRect(screen, b.X+spacing/2, top, width, height, 1, config.TextLightColor, false)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size)
}

func (b *PauseButton) Press() {
	b.LastClickTime = time.Now()
}
