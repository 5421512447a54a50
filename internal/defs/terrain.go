// internal/defs/terrain.go
package defs

// TerrainType is the kind of ground a tile is made of.
type TerrainType int

const (
	TerrainEntry TerrainType = iota
	TerrainExit
	TerrainLand
	TerrainWater
	TerrainRock
)

var terrainNames = map[TerrainType]string{
	TerrainEntry: "entry",
	TerrainExit:  "exit",
	TerrainLand:  "land",
	TerrainWater: "water",
	TerrainRock:  "rock",
}

func (t TerrainType) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return "unknown"
}

// Traversable reports whether units may walk over this terrain.
func (t TerrainType) Traversable() bool {
	switch t {
	case TerrainEntry, TerrainExit, TerrainLand:
		return true
	}
	return false
}

// Buildable reports whether towers may be placed on this terrain.
func (t TerrainType) Buildable() bool {
	return t == TerrainLand
}
