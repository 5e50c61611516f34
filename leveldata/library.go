package leveldata

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/greenie/progression"
)

// Library is the full set of levels named by a manifest.
type Library struct {
	Hub    progression.LevelID
	levels map[progression.LevelID]*Level
	order  []progression.LevelID
}

// LoadLibrary reads dir/levels.yaml and every map it lists.
func LoadLibrary(fsys fs.FS, dir string) (*Library, error) {
	manifest, err := LoadManifest(fsys, path.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}

	lib := &Library{
		Hub:    manifest.Hub,
		levels: make(map[progression.LevelID]*Level, len(manifest.Levels)),
	}
	for _, entry := range manifest.Levels {
		level, err := LoadLevel(fsys, dir, entry)
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", entry.ID, err)
		}
		lib.levels[entry.ID] = level
		lib.order = append(lib.order, entry.ID)
	}
	return lib, nil
}

// Level returns the parsed level for id.
func (l *Library) Level(id progression.LevelID) (*Level, bool) {
	level, ok := l.levels[id]
	return level, ok
}

// IDs returns level ids in manifest order.
func (l *Library) IDs() []progression.LevelID {
	return l.order
}

// DanglingDoors lists doors whose destination is not in the library, as
// "level -> target" strings.
func (l *Library) DanglingDoors() []string {
	var out []string
	for _, id := range l.order {
		for _, d := range l.levels[id].Doors {
			if d.Destination == "" {
				continue
			}
			if _, ok := l.levels[d.Destination]; !ok {
				out = append(out, fmt.Sprintf("%s -> %s", id, d.Destination))
			}
		}
	}
	return out
}
