// component/unit.go
package component

import (
	"go-prevent/internal/defs"
	"go-prevent/pkg/grid"
)

// Unit is an enemy walking from the entry to the exit.
type Unit struct {
	DefID          string
	Name           string
	Health         int
	StartingHealth int
	Speed          int        // пикселей за тик
	Location       grid.Point // текущая позиция, центр юнита
	Destination    grid.Point // следующая путевая точка
	Done           bool       // дошёл до выхода
	Stalled        bool       // путь к выходу перекрыт
}

// NewUnit places a unit from def at spawn with its destination equal to its
// location, so the first movement tick asks for a path.
func NewUnit(def defs.UnitDefinition, spawn grid.Point, scale int) *Unit {
	u := &Unit{
		DefID:          def.ID,
		Name:           def.Name,
		Health:         def.Health,
		StartingHealth: def.Health,
		Location:       spawn,
		Destination:    spawn,
	}
	u.SetSpeed(def.Speed, scale)
	return u
}

// SetSpeed clamps speed to [1, scale] so a unit can never skip a tile.
func (u *Unit) SetSpeed(speed, scale int) {
	u.Speed = min(max(speed, 1), max(scale, 1))
}

func (u *Unit) ContainingTile(scale int) grid.Tile {
	return grid.TileAt(u.Location, scale)
}

func (u *Unit) Arrived() bool {
	return u.Location == u.Destination
}

func (u *Unit) HealthFraction() float64 {
	if u.StartingHealth <= 0 {
		return 0
	}
	return float64(u.Health) / float64(u.StartingHealth)
}
