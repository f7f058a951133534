package asset

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/BurntSushi/toml"
)

// Manifest maps logical sprite names to files in the asset filesystem
type Manifest struct {
	Sprites map[string]string `toml:"sprites"`
}

// LoadManifest decodes a TOML manifest from fsys
func LoadManifest(fsys fs.FS, path string) (*Manifest, error) {
	var m Manifest
	md, err := toml.DecodeFS(fsys, path, &m)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("manifest %s: unknown keys %v", path, undecoded)
	}
	if len(m.Sprites) == 0 {
		return nil, fmt.Errorf("manifest %s: no sprites declared", path)
	}
	return &m, nil
}

// Path resolves a sprite name to its file path
func (m *Manifest) Path(name string) (string, error) {
	p, ok := m.Sprites[name]
	if !ok {
		return "", fmt.Errorf("sprite %q not in manifest", name)
	}
	return p, nil
}

// Names returns declared sprite names in sorted order
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Sprites))
	for name := range m.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
