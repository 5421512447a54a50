// internal/defs/towers.go
package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Sprite      string   `yaml:"sprite"`
	DPS         int      `yaml:"dps"`
	Cost        int      `yaml:"cost"`
	Traversable bool     `yaml:"traversable"`
	Upgrades    []string `yaml:"upgrades,omitempty"` // IDs of towers this one can become
}

// CanUpgradeTo reports whether id is listed in the tower's upgrade chain.
func (d TowerDefinition) CanUpgradeTo(id string) bool {
	for _, u := range d.Upgrades {
		if u == id {
			return true
		}
	}
	return false
}
