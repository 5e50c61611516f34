package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"github.com/automoto/greenie/progression"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest name inside a levels directory.
const ManifestFile = "levels.yaml"

// Manifest lists the playable levels and names the hub.
type Manifest struct {
	Hub    progression.LevelID `yaml:"hub"`
	Levels []ManifestEntry     `yaml:"levels"`
}

// ManifestEntry describes one level.
type ManifestEntry struct {
	ID            progression.LevelID `yaml:"id"`
	Map           string              `yaml:"map"`
	Title         string              `yaml:"title"`
	Background    string              `yaml:"background"`
	LockThreshold int                 `yaml:"lockThreshold"`
}

// LoadManifest reads and validates a levels.yaml file.
func LoadManifest(fsys fs.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Hub == "" {
		return fmt.Errorf("manifest: hub is required")
	}
	seen := make(map[progression.LevelID]bool, len(m.Levels))
	for i, e := range m.Levels {
		switch {
		case e.ID == "":
			return fmt.Errorf("manifest: level %d has no id", i)
		case e.Map == "":
			return fmt.Errorf("manifest: level %q has no map", e.ID)
		case e.LockThreshold < 0:
			return fmt.Errorf("manifest: level %q has negative lockThreshold", e.ID)
		case seen[e.ID]:
			return fmt.Errorf("manifest: duplicate level %q", e.ID)
		}
		if e.Background != "" {
			if _, err := ParseColor(e.Background); err != nil {
				return fmt.Errorf("manifest: level %q: %w", e.ID, err)
			}
		}
		seen[e.ID] = true
	}
	if !seen[m.Hub] {
		return fmt.Errorf("manifest: hub %q is not listed in levels", m.Hub)
	}
	return nil
}

// Entry returns the manifest entry for id.
func (m *Manifest) Entry(id progression.LevelID) (ManifestEntry, bool) {
	for _, e := range m.Levels {
		if e.ID == id {
			return e, true
		}
	}
	return ManifestEntry{}, false
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
