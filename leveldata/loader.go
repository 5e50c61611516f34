package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/greenie/progression"
	"github.com/lafriks/go-tiled"
)

var (
	defaultSolidFill = color.RGBA{R: 0x4a, G: 0x7a, B: 0x3a, A: 0xff}
	defaultDecorFill = color.RGBA{R: 0x2f, G: 0x4f, B: 0x2f, A: 0x80}
)

// LoadLevel parses the TMX map of entry, relative to dir within fsys. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, dir string, entry ManifestEntry) (*Level, error) {
	tmxPath := path.Join(dir, entry.Map)
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		ID:            entry.ID,
		Title:         entry.Title,
		Width:         levelMap.Width * levelMap.TileWidth,
		Height:        levelMap.Height * levelMap.TileHeight,
		TileWidth:     levelMap.TileWidth,
		TileHeight:    levelMap.TileHeight,
		LockThreshold: entry.LockThreshold,
	}
	if level.Title == "" {
		level.Title = string(entry.ID)
	}
	if entry.Background != "" {
		// validated with the manifest
		level.Background, _ = ParseColor(entry.Background)
	}

	parseTiles(levelMap, level)
	parseObjects(levelMap, level)

	return level, nil
}

func parseTiles(levelMap *tiled.Map, level *Level) {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			continue
		}
		ground := layer.Name == LayerGround
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := false
				if x < levelMap.Width {
					tile := layer.Tiles[y*levelMap.Width+x]
					if !tile.IsNil() {
						solid = ground && tileCollides(tile)
						level.Tiles = append(level.Tiles, TileRect{
							X:     float64(x) * tileW,
							Y:     float64(y) * tileH,
							W:     tileW,
							H:     tileH,
							Fill:  tileFill(tile, solid),
							Solid: solid,
						})
					}
				}

				// Merge consecutive solid tiles of a row into one collision box
				switch {
				case solid && runStart < 0:
					runStart = x
				case !solid && runStart >= 0:
					level.Solids = append(level.Solids, SolidRect{
						X: float64(runStart) * tileW,
						Y: float64(y) * tileH,
						W: float64(x-runStart) * tileW,
						H: tileH,
					})
					runStart = -1
				}
			}
		}
	}
}

func tilesetTile(tile *tiled.LayerTile) *tiled.TilesetTile {
	if tile.Tileset == nil {
		return nil
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return nil
	}
	return tilesetTile
}

func tileCollides(tile *tiled.LayerTile) bool {
	tt := tilesetTile(tile)
	return tt != nil && tt.Properties.GetBool(PropCollides)
}

func tileFill(tile *tiled.LayerTile, solid bool) color.RGBA {
	if tt := tilesetTile(tile); tt != nil {
		if s := tt.Properties.GetString(PropFill); s != "" {
			if c, err := ParseColor(s); err == nil {
				return c
			}
			log.Printf("Warning: tile %d has invalid fill %q", tile.ID, s)
		}
	}
	if solid {
		return defaultSolidFill
	}
	return defaultDecorFill
}

func parseObjects(levelMap *tiled.Map, level *Level) {
	var spawnGroup, objectGroup *tiled.ObjectGroup
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSpawns:
			spawnGroup = og
		case GroupObjects:
			objectGroup = og
		case GroupDoors:
			for _, o := range og.Objects {
				level.Doors = append(level.Doors, doorDefinition(o))
			}
		}
	}

	// Levels without a dedicated spawn layer keep their spawns with the
	// other objects.
	if spawnGroup == nil {
		spawnGroup = objectGroup
	}
	if spawnGroup != nil {
		for _, o := range spawnGroup.Objects {
			if o.Name == "" {
				continue
			}
			level.Spawns = append(level.Spawns, progression.SpawnPoint{
				Tag:      progression.SpawnTag(o.Name),
				Position: objectCenter(o),
			})
		}
	}

	if objectGroup != nil {
		for _, o := range objectGroup.Objects {
			name := objectName(o)
			if name == "" {
				continue
			}
			level.Markers = append(level.Markers, progression.Marker{
				Name:     name,
				Position: objectCenter(o),
				Size:     progression.Vec{X: o.Width, Y: o.Height},
			})
		}
	}
}

func doorDefinition(o *tiled.Object) progression.DoorDefinition {
	w, h := o.Width, o.Height
	x, y := o.X, o.Y
	if w <= 0 || h <= 0 {
		// point object: centre a default sized trigger on it
		w, h = DefaultDoorSize, DefaultDoorSize
		x, y = o.X-w/2, o.Y-h/2
	}
	return progression.DoorDefinition{
		Bounds:           progression.Rect{X: x, Y: y, W: w, H: h},
		Destination:      progression.LevelID(o.Properties.GetString(PropTarget)),
		DestinationSpawn: progression.SpawnTag(o.Properties.GetString(PropSpawn)),
	}
}

func objectCenter(o *tiled.Object) progression.Vec {
	return progression.Vec{X: o.X + o.Width/2, Y: o.Y + o.Height/2}
}

func objectName(o *tiled.Object) string {
	if o.Name != "" {
		return o.Name
	}
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}
