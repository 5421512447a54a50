// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"go-prevent/internal/config"
	"go-prevent/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// clickPulse увеличивает кнопку сразу после клика и затухает.
func clickPulse(last time.Time) float32 {
	if last.IsZero() {
		return 1
	}
	elapsed := time.Since(last).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

// SpeedButton переключает множитель скорости игры по кругу.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	Face          font.Face
	LastClickTime time.Time
	Speeds        []int
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, face font.Face) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		Face:        face,
		Speeds:      config.GameSpeeds,
		StateColors: config.SpeedColors,
	}
}

// Multiplier возвращает текущий множитель скорости.
func (b *SpeedButton) Multiplier() int {
	if len(b.Speeds) == 0 {
		return 1
	}
	return b.Speeds[b.CurrentState]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	radius := b.Size * clickPulse(b.LastClickTime)
	clr := config.DefaultTowerColor
	if len(b.StateColors) > 0 {
		clr = b.StateColors[b.CurrentState%len(b.StateColors)]
	}
	vector.DrawFilledCircle(screen, b.X, b.Y, radius, clr, true)
	vector.StrokeCircle(screen, b.X, b.Y, radius, 1, config.TextLightColor, true)

	if b.Face != nil {
		label := strconv.Itoa(b.Multiplier()) + "x"
		x := int(b.X) - len(label)*config.TextCharWidth/2
		render.DrawText(screen, b.Face, label, x, int(b.Y)-7, config.UnitColor)
	}
}

// IsClicked проверяет попадание в круг кнопки.
func (b *SpeedButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	if len(b.Speeds) > 0 {
		b.CurrentState = (b.CurrentState + 1) % len(b.Speeds)
	}
	b.LastClickTime = time.Now()
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx, dy := float32(x)-cx, float32(y)-cy
	return dx*dx+dy*dy <= r*r
}
