package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const minimalYAML = `
base_tower: wall
towers:
  - id: wall
    name: Wall
    cost: 1
    upgrades: [spire]
  - id: spire
    name: Spire
    cost: 3
units:
  - id: runner
    name: Runner
    health: 5
    speed: 3
wave_codes:
  "1": runner
tower_codes:
  "1": wall
  "2": spire
`

func TestDefault_IsValid(t *testing.T) {
	lib := Default()
	if err := lib.Validate(); err != nil {
		t.Fatalf("embedded defaults failed validation: %v", err)
	}
	base, err := lib.Tower(lib.BaseTower)
	if err != nil {
		t.Fatalf("base tower: %v", err)
	}
	if base.Traversable {
		t.Error("base tower should block units")
	}
	if lib.Credits == "" {
		t.Error("expected credits text")
	}
}

func TestDefault_WaveCodes(t *testing.T) {
	lib := Default()
	tests := []struct {
		code rune
		want string
	}{
		{'1', "soldier"},
		{'2', "humvee"},
		{'3', "tank"},
	}
	for _, tc := range tests {
		unit, err := lib.WaveUnit(tc.code)
		if err != nil {
			t.Errorf("code %q: unexpected error %v", tc.code, err)
			continue
		}
		if unit.ID != tc.want {
			t.Errorf("code %q: expected %s, got %s", tc.code, tc.want, unit.ID)
		}
	}
	if tower, err := lib.MapTower('3'); err != nil || tower.ID != "heavy" {
		t.Errorf("expected heavy for map code 3, got %v (%v)", tower.ID, err)
	}
	if _, err := lib.WaveUnit('9'); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit for code 9, got %v", err)
	}
}

func TestParse(t *testing.T) {
	lib, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lib.TowerIDs(); len(got) != 2 || got[0] != "wall" || got[1] != "spire" {
		t.Errorf("expected towers ordered by cost, got %v", got)
	}
	wall, _ := lib.Tower("wall")
	if !wall.CanUpgradeTo("spire") || wall.CanUpgradeTo("wall") {
		t.Errorf("unexpected upgrade chain %v", wall.Upgrades)
	}
	if unit, err := lib.WaveUnit('1'); err != nil || unit.ID != "runner" {
		t.Errorf("expected runner for code 1, got %v (%v)", unit.ID, err)
	}
	if tower, err := lib.MapTower('2'); err != nil || tower.ID != "spire" {
		t.Errorf("expected spire for code 2, got %v (%v)", tower.ID, err)
	}
	if _, err := lib.MapTower('3'); !errors.Is(err, ErrUnknownTower) {
		t.Errorf("expected ErrUnknownTower for code 3, got %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown base tower",
			yaml:    "base_tower: nope\nunits: [{id: a, health: 1}]\nwave_codes: {\"1\": a}\n",
			wantErr: ErrUnknownTower,
		},
		{
			name: "unknown upgrade",
			yaml: `
base_tower: a
towers: [{id: a, upgrades: [b]}]
units: [{id: u, health: 1}]
wave_codes: {"1": u}
`,
			wantErr: ErrUnknownTower,
		},
		{
			name: "unknown wave unit",
			yaml: `
base_tower: a
towers: [{id: a}]
units: [{id: u, health: 1}]
wave_codes: {"1": ghost}
`,
			wantErr: ErrUnknownUnit,
		},
		{
			name: "duplicate tower",
			yaml: `
base_tower: a
towers: [{id: a}, {id: a}]
`,
			wantMsg: "duplicate tower",
		},
		{
			name: "non-positive health",
			yaml: `
base_tower: a
towers: [{id: a}]
units: [{id: u, health: 0}]
wave_codes: {"1": u}
`,
			wantMsg: "health must be positive",
		},
		{
			name:    "malformed",
			yaml:    "towers: [",
			wantMsg: "unmarshal",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantMsg != "" && !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("expected %q in error, got %v", tc.wantMsg, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.yaml")
	if err := os.WriteFile(path, []byte(minimalYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	lib, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lib.BaseTower != "wall" {
		t.Errorf("expected base tower wall, got %s", lib.BaseTower)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestTerrainType(t *testing.T) {
	tests := []struct {
		terrain     TerrainType
		traversable bool
		buildable   bool
	}{
		{TerrainEntry, true, false},
		{TerrainExit, true, false},
		{TerrainLand, true, true},
		{TerrainWater, false, false},
		{TerrainRock, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.terrain.String(), func(t *testing.T) {
			if got := tc.terrain.Traversable(); got != tc.traversable {
				t.Errorf("Traversable: expected %v, got %v", tc.traversable, got)
			}
			if got := tc.terrain.Buildable(); got != tc.buildable {
				t.Errorf("Buildable: expected %v, got %v", tc.buildable, got)
			}
		})
	}
}

func TestWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.yaml")
	if err := os.WriteFile(path, []byte(minimalYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()
	reloads := w.Reload(nil)

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	updated := strings.Replace(minimalYAML, "cost: 3", "cost: 7", 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case lib := <-reloads:
			if lib.Towers["spire"].Cost == 7 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
