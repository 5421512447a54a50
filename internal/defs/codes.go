// internal/defs/codes.go
package defs

import "fmt"

// DefaultWaveCodes maps the digits of a level's wave line to unit IDs.
var DefaultWaveCodes = map[rune]string{
	'1': "soldier",
	'2': "humvee",
	'3': "tank",
}

// DefaultTowerCodes maps the digits of a level's grid to pre-placed towers.
var DefaultTowerCodes = map[rune]string{
	'1': "light",
	'2': "medium",
	'3': "heavy",
}

// MapTower resolves a grid digit to a tower definition.
func (l *Library) MapTower(code rune) (TowerDefinition, error) {
	id, ok := runeCodes(l.TowerCodes, DefaultTowerCodes)[code]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("%w: map code %q", ErrUnknownTower, code)
	}
	return l.Tower(id)
}

// WaveUnit resolves a wave digit to a unit definition.
func (l *Library) WaveUnit(code rune) (UnitDefinition, error) {
	id, ok := runeCodes(l.WaveCodes, DefaultWaveCodes)[code]
	if !ok {
		return UnitDefinition{}, fmt.Errorf("%w: wave code %q", ErrUnknownUnit, code)
	}
	return l.Unit(id)
}

func runeCodes(codes map[string]string, fallback map[rune]string) map[rune]string {
	if len(codes) == 0 {
		return fallback
	}
	out := make(map[rune]string, len(codes))
	for k, v := range codes {
		r := []rune(k)
		if len(r) == 1 {
			out[r[0]] = v
		}
	}
	return out
}
