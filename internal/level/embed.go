// internal/level/embed.go
package level

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go-prevent/internal/defs"
)

//go:embed maps/*.map
var mapsFS embed.FS

// Names lists the levels compiled into the binary.
func Names() []string {
	entries, err := fs.ReadDir(mapsFS, "maps")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".map" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".map"))
	}
	sort.Strings(names)
	return names
}

// LoadEmbedded parses a level compiled into the binary by name.
func LoadEmbedded(name string, lib *defs.Library) (*Level, error) {
	data, err := mapsFS.ReadFile(path.Join("maps", name+".map"))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	lvl, err := Parse(bytes.NewReader(data), lib)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	lvl.Name = name
	return lvl, nil
}

// Open resolves name as an embedded level first, then as a path on disk.
func Open(name string, lib *defs.Library) (*Level, error) {
	for _, n := range Names() {
		if n == name {
			return LoadEmbedded(name, lib)
		}
	}
	return Load(name, lib)
}
