// component/tower.go
package component

import "go-prevent/internal/defs"

// Tower is a built structure occupying one tile.
type Tower struct {
	DefID       string // ID из defaults.yaml
	Name        string
	DPS         int
	Cost        int // сколько стоила последняя покупка или апгрейд
	Passable    bool
	Upgrades    []string
}

func NewTower(def defs.TowerDefinition) *Tower {
	return &Tower{
		DefID:       def.ID,
		Name:        def.Name,
		DPS:         def.DPS,
		Cost:        def.Cost,
		Passable:    def.Traversable,
		Upgrades:    append([]string(nil), def.Upgrades...),
	}
}

func (t *Tower) Traversable() bool { return t.Passable }

// SellPrice refunds half the cost, never less than one.
func (t *Tower) SellPrice() int {
	return max(t.Cost/2, 1)
}

func (t *Tower) CanUpgradeTo(id string) bool {
	for _, u := range t.Upgrades {
		if u == id {
			return true
		}
	}
	return false
}
