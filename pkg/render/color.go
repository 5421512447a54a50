// pkg/render/color.go
package render

import (
	"image/color"

	"go-prevent/internal/config"
	"go-prevent/internal/defs"
)

// MapColors holds all the color definitions needed to render the board.
type MapColors struct {
	BackgroundColor color.RGBA
	LandColor       color.RGBA
	RockColor       color.RGBA
	WaterColor      color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	EmptyColor      color.RGBA
	GridLineColor   color.RGBA
	TowerColors     map[string]color.RGBA
	DefaultTower    color.RGBA
	TowerStroke     color.RGBA
	UnitColor       color.RGBA
	HealthColor     color.RGBA
	HealthBack      color.RGBA
	PathColor       color.RGBA
	FieldTextColor  color.RGBA
	HoverColor      color.RGBA
	StrokeWidth     float32
}

// DefaultMapColors returns the palette from internal/config.
func DefaultMapColors() MapColors {
	return MapColors{
		BackgroundColor: config.BackgroundColor,
		LandColor:       config.LandColor,
		RockColor:       config.RockColor,
		WaterColor:      config.WaterColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		EmptyColor:      config.EmptyColor,
		GridLineColor:   config.GridLineColor,
		TowerColors:     config.TowerColors,
		DefaultTower:    config.DefaultTowerColor,
		TowerStroke:     config.TowerStrokeColor,
		UnitColor:       config.UnitColor,
		HealthColor:     config.HealthBarColor,
		HealthBack:      config.HealthBarBack,
		PathColor:       config.PathColor,
		FieldTextColor:  config.FieldTextColor,
		HoverColor:      config.HoverColor,
		StrokeWidth:     config.StrokeWidth,
	}
}

// TerrainColor picks the fill for a terrain type.
func (c MapColors) TerrainColor(t defs.TerrainType) color.RGBA {
	switch t {
	case defs.TerrainEntry:
		return c.EntryColor
	case defs.TerrainExit:
		return c.ExitColor
	case defs.TerrainLand:
		return c.LandColor
	case defs.TerrainWater:
		return c.WaterColor
	case defs.TerrainRock:
		return c.RockColor
	}
	return c.EmptyColor
}

func (c MapColors) TowerColor(defID string) color.RGBA {
	if clr, ok := c.TowerColors[defID]; ok {
		return clr
	}
	return c.DefaultTower
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
