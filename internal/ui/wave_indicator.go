// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-prevent/internal/config"
	"go-prevent/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Face             font.Face
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Face:             face,
		Color:            config.WaveColor,
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label возвращает подпись вида "III/V".
func (i *WaveIndicator) Label(wave, waves int) string {
	if wave <= 0 || waves <= 0 {
		return ""
	}
	return toRoman(wave) + "/" + toRoman(waves)
}

// Draw отрисовывает индикатор. wave считается с единицы.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, waves int) {
	text := i.Label(wave, waves)
	if text == "" {
		return
	}

	// Последняя волна красная
	textColor := i.Color
	if wave == waves {
		textColor = config.FinalWaveColor
	}

	// Рисуем обводку
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			render.DrawText(screen, i.Face, text, i.X+x, i.Y+y, i.OutlineColor)
		}
	}
	render.DrawText(screen, i.Face, text, i.X, i.Y, textColor)
}
