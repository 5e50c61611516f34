// Package levels embeds the shipped level maps and serves them as a
// leveldata.Library, optionally reloading them from disk while editing.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/greenie/leveldata"
	"github.com/automoto/greenie/progression"
)

//go:embed levels.yaml *.tmx
var levelFS embed.FS

// MustLoadEmbedded parses the embedded levels. A failure means a broken
// build, so it panics.
func MustLoadEmbedded() *leveldata.Library {
	lib, err := leveldata.LoadLibrary(levelFS, ".")
	if err != nil {
		panic(fmt.Sprintf("Failed to load embedded levels: %v", err))
	}
	return lib
}

// Store hands out the current level library. Disk backed stores watch their
// directory and pick up edits on Poll.
type Store struct {
	lib     *leveldata.Library
	fsys    fs.FS
	dir     string
	watcher *Watcher
}

// NewEmbeddedStore serves the levels compiled into the binary.
func NewEmbeddedStore() *Store {
	lib := MustLoadEmbedded()
	warnDangling(lib)
	return &Store{lib: lib, fsys: levelFS, dir: "."}
}

// NewDiskStore loads levels from dir and watches it for changes.
func NewDiskStore(dir string) (*Store, error) {
	fsys := os.DirFS(dir)
	lib, err := leveldata.LoadLibrary(fsys, ".")
	if err != nil {
		return nil, err
	}
	warnDangling(lib)

	s := &Store{lib: lib, fsys: fsys, dir: "."}
	w, err := NewWatcher(dir)
	if err != nil {
		log.Printf("Warning: level hot reload disabled: %v", err)
		return s, nil
	}
	s.watcher = w
	return s, nil
}

// Library returns the most recently loaded library.
func (s *Store) Library() *leveldata.Library {
	return s.lib
}

// Level looks up id in the current library.
func (s *Store) Level(id progression.LevelID) (*leveldata.Level, bool) {
	return s.lib.Level(id)
}

// Hub returns the hub level id.
func (s *Store) Hub() progression.LevelID {
	return s.lib.Hub
}

// Title returns the display title of id, or the id itself when unknown.
func (s *Store) Title(id progression.LevelID) string {
	if level, ok := s.lib.Level(id); ok {
		return level.Title
	}
	return string(id)
}

// Poll drains pending file events and reloads the library once if any
// arrived. A failed reload keeps the previous library. It reports whether
// a new library was installed.
func (s *Store) Poll() bool {
	if s.watcher == nil {
		return false
	}

	changed := ""
	for {
		select {
		case name, ok := <-s.watcher.Events:
			if !ok {
				_ = s.Close()
				return false
			}
			changed = name
			continue
		case err := <-s.watcher.Errors:
			if err != nil {
				log.Printf("Warning: level watcher: %v", err)
			}
			continue
		default:
		}
		break
	}
	if changed == "" {
		return false
	}

	lib, err := leveldata.LoadLibrary(s.fsys, s.dir)
	if err != nil {
		log.Printf("Warning: reload after change to %s failed: %v", changed, err)
		return false
	}
	warnDangling(lib)
	s.lib = lib
	log.Printf("Reloaded levels after change to %s", changed)
	return true
}

// Close stops watching.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	w := s.watcher
	s.watcher = nil
	return w.Close()
}

func warnDangling(lib *leveldata.Library) {
	for _, d := range lib.DanglingDoors() {
		log.Printf("Warning: door %s leads to an unknown level", d)
	}
}
