// Package leveldata parses Tiled (TMX) level files and the levels.yaml
// manifest into progression data. It has no dependencies on ebitengine,
// donburi or resolv, so it can be loaded from an embed.FS or os.DirFS and
// tested headless.
package leveldata

import (
	"image/color"

	"github.com/automoto/greenie/progression"
)

// Layer and object group names used in the TMX files.
const (
	LayerGround  = "Ground-n-Platforms"
	GroupSpawns  = "Spawns"
	GroupDoors   = "Doors"
	GroupObjects = "Objects"

	PropCollides = "collides"
	PropFill     = "fill"
	PropTarget   = "target"
	PropSpawn    = "spawn"

	// DefaultDoorSize is used for door objects placed as points.
	DefaultDoorSize = 32.0
)

// Level holds everything parsed from one TMX map plus its manifest entry.
type Level struct {
	ID         progression.LevelID
	Title      string
	Background color.RGBA

	// Map size in pixels.
	Width, Height int

	TileWidth, TileHeight int

	// Tiles are every non-empty tile of every tile layer, for drawing.
	Tiles []TileRect
	// Solids are the collidable ground tiles merged into horizontal runs.
	Solids []SolidRect

	Spawns        []progression.SpawnPoint
	Doors         []progression.DoorDefinition
	Markers       []progression.Marker
	LockThreshold int
}

// TileRect is a drawable tile.
type TileRect struct {
	X, Y, W, H float64
	Fill       color.RGBA
	Solid      bool
}

// SolidRect is a collision box.
type SolidRect struct {
	X, Y, W, H float64
}

// Definition returns the part of the level the progression core works on.
func (l *Level) Definition() progression.LevelDefinition {
	return progression.LevelDefinition{
		ID:            l.ID,
		Title:         l.Title,
		Spawns:        l.Spawns,
		Doors:         l.Doors,
		Markers:       l.Markers,
		LockThreshold: l.LockThreshold,
	}
}
