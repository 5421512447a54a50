// component/terrain.go
package component

import "go-prevent/internal/defs"

// Terrain is the ground piece of a tile with no tower on it.
type Terrain struct {
	Type defs.TerrainType
}

func NewTerrain(t defs.TerrainType) *Terrain {
	return &Terrain{Type: t}
}

func (t *Terrain) Traversable() bool { return t.Type.Traversable() }

func (t *Terrain) Buildable() bool { return t.Type.Buildable() }
