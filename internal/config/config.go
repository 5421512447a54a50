// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	// Размер поля в тайлах
	TileCapacityX = 40
	TileCapacityY = 25
	DefaultScale  = 32

	HUDHeight    = 40
	ScreenWidth  = TileCapacityX * DefaultScale
	ScreenHeight = TileCapacityY*DefaultScale + HUDHeight

	StartScore = 20
	MaxLives   = 20

	DispenseDelay   = time.Second
	WaveDelayFactor = 4 // пауза между волнами = DispenseDelay * WaveDelayFactor
	TickYield       = 10 * time.Millisecond
	MaxDeltaTime    = 0.06

	HealthBarHeightDivisor = 15
	UnitRadiusFactor       = 0.3
	TowerInset             = 4
	StrokeWidth            = 2.0
	PathDotRadius          = 3.0

	TextCharWidth = 7
	TextOffsetY   = 4
	MenuItemGap   = 28
	ClickCooldown = 150 * time.Millisecond
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	LandColor        = color.RGBA{70, 100, 70, 255}
	RockColor        = color.RGBA{110, 110, 110, 255}
	WaterColor       = color.RGBA{40, 80, 160, 255}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	EmptyColor       = color.RGBA{0, 0, 0, 255}
	GridLineColor    = color.RGBA{30, 40, 30, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{150, 150, 160, 255}
	HoverColor       = color.RGBA{255, 255, 255, 200}
	HUDColor         = color.RGBA{35, 35, 50, 255}
	MenuHighlight    = color.RGBA{70, 130, 180, 220}
	UnitColor        = color.RGBA{0, 0, 0, 255}
	HealthBarColor   = color.RGBA{50, 205, 50, 255}
	HealthBarBack    = color.RGBA{150, 30, 30, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	PathColor        = color.RGBA{255, 255, 0, 160}
	FieldTextColor   = color.RGBA{255, 255, 255, 140}
	TowerColors      = map[string]color.RGBA{
		"light":  {220, 200, 80, 255},
		"medium": {230, 140, 40, 255},
		"heavy":  {200, 60, 50, 255},
	}
	DefaultTowerColor = color.RGBA{180, 50, 230, 255}

	// HUD
	WaveColor       = color.RGBA{70, 130, 220, 255}
	FinalWaveColor  = color.RGBA{230, 41, 55, 255}
	LivesHighColor  = color.RGBA{0, 121, 241, 255}
	LivesLowColor   = color.RGBA{230, 41, 55, 255}
	LivesEmptyColor = color.RGBA{0, 0, 0, 255}
	PauseColor      = color.RGBA{255, 203, 0, 255}
	SpeedColors     = []color.RGBA{
		{0, 228, 48, 255},
		{255, 161, 0, 255},
		{230, 41, 55, 255},
	}
)

// Множители скорости игры для кнопки ускорения
var GameSpeeds = []int{1, 2, 4}
