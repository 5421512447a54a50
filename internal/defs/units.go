// internal/defs/units.go
package defs

// UnitDefinition holds all the static data for a specific type of unit.
type UnitDefinition struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Sprite string `yaml:"sprite"`
	Health int    `yaml:"health"`
	Speed  int    `yaml:"speed"` // pixels per tick, clamped to the tile size on spawn
}
