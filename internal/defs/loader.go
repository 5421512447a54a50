// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownTower = errors.New("defs: unknown tower")
	ErrUnknownUnit  = errors.New("defs: unknown unit")
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Library holds every tower and unit definition, keyed by ID.
type Library struct {
	BaseTower string
	Towers    map[string]TowerDefinition
	Units     map[string]UnitDefinition
	WaveCodes  map[string]string
	TowerCodes map[string]string
	Credits    string
}

type libraryFile struct {
	BaseTower string            `yaml:"base_tower"`
	Towers    []TowerDefinition `yaml:"towers"`
	Units     []UnitDefinition  `yaml:"units"`
	WaveCodes  map[string]string `yaml:"wave_codes"`
	TowerCodes map[string]string `yaml:"tower_codes"`
	Credits    string            `yaml:"credits"`
}

// Load reads a definitions file from disk.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Default returns the definitions compiled into the binary.
func Default() *Library {
	lib, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("defs: embedded defaults are invalid: %v", err))
	}
	return lib
}

// Parse decodes and validates a YAML definitions document.
func Parse(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := &Library{
		BaseTower: file.BaseTower,
		Towers:    make(map[string]TowerDefinition, len(file.Towers)),
		Units:     make(map[string]UnitDefinition, len(file.Units)),
		WaveCodes:  file.WaveCodes,
		TowerCodes: file.TowerCodes,
		Credits:    file.Credits,
	}
	for _, def := range file.Towers {
		if _, dup := lib.Towers[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower id %q", def.ID)
		}
		lib.Towers[def.ID] = def
	}
	for _, def := range file.Units {
		if _, dup := lib.Units[def.ID]; dup {
			return nil, fmt.Errorf("duplicate unit id %q", def.ID)
		}
		lib.Units[def.ID] = def
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Validate checks that every reference inside the library resolves.
func (l *Library) Validate() error {
	var errs []error
	if _, ok := l.Towers[l.BaseTower]; !ok {
		errs = append(errs, fmt.Errorf("base tower: %w %q", ErrUnknownTower, l.BaseTower))
	}
	for _, id := range l.TowerIDs() {
		def := l.Towers[id]
		if def.Cost < 0 {
			errs = append(errs, fmt.Errorf("tower %q: negative cost %d", id, def.Cost))
		}
		for _, up := range def.Upgrades {
			if _, ok := l.Towers[up]; !ok {
				errs = append(errs, fmt.Errorf("tower %q upgrade: %w %q", id, ErrUnknownTower, up))
			}
		}
	}
	for _, id := range l.UnitIDs() {
		if l.Units[id].Health <= 0 {
			errs = append(errs, fmt.Errorf("unit %q: health must be positive", id))
		}
	}
	for code, id := range runeCodes(l.WaveCodes, DefaultWaveCodes) {
		if _, ok := l.Units[id]; !ok {
			errs = append(errs, fmt.Errorf("wave code %q: %w %q", code, ErrUnknownUnit, id))
		}
	}
	for code, id := range runeCodes(l.TowerCodes, DefaultTowerCodes) {
		if _, ok := l.Towers[id]; !ok {
			errs = append(errs, fmt.Errorf("map code %q: %w %q", code, ErrUnknownTower, id))
		}
	}
	return errors.Join(errs...)
}

func (l *Library) Tower(id string) (TowerDefinition, error) {
	def, ok := l.Towers[id]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("%w %q", ErrUnknownTower, id)
	}
	return def, nil
}

func (l *Library) Unit(id string) (UnitDefinition, error) {
	def, ok := l.Units[id]
	if !ok {
		return UnitDefinition{}, fmt.Errorf("%w %q", ErrUnknownUnit, id)
	}
	return def, nil
}

// TowerIDs returns tower IDs sorted by cost, then ID.
func (l *Library) TowerIDs() []string {
	ids := make([]string, 0, len(l.Towers))
	for id := range l.Towers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := l.Towers[ids[i]], l.Towers[ids[j]]
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.ID < b.ID
	})
	return ids
}

func (l *Library) UnitIDs() []string {
	ids := make([]string, 0, len(l.Units))
	for id := range l.Units {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
