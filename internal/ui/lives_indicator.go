// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-prevent/internal/config"
	"go-prevent/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCircleRadius  = 5.0
	LivesCircleSpacing = 3.0
)

// LivesIndicator отображает оставшиеся жизни рядом кружков.
type LivesIndicator struct {
	X, Y float32
	Face font.Face
}

func NewLivesIndicator(x, y float32, face font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Face: face}
}

// livesColor выбирает цвет j-го кружка. Пока жизней больше половины,
// "избыток" синий, остальное красное; пустые кружки черные.
func livesColor(j, lives, maxLives int) color.RGBA {
	if j >= lives {
		return config.LivesEmptyColor
	}
	half := maxLives / 2
	if lives > half && j < lives-half {
		return config.LivesHighColor
	}
	return config.LivesLowColor
}

// Width возвращает ширину ряда из maxLives кружков.
func (i *LivesIndicator) Width(maxLives int) float32 {
	return float32(maxLives) * (LivesCircleRadius*2 + LivesCircleSpacing)
}

// Draw рисует ряд кружков и подпись "lives/max" над ним.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		cx := i.X + float32(j)*step + LivesCircleRadius
		cy := i.Y + LivesCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, livesColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, config.TextLightColor, true)
	}
	if i.Face != nil {
		label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
		render.DrawText(screen, i.Face, label, int(i.X), int(i.Y)-16, config.TextLightColor)
	}
}
