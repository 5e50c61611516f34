package leveldata

import (
	"image/color"
	"os"
	"testing"

	"github.com/automoto/greenie/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestLevel(t *testing.T, id progression.LevelID) *Level {
	t.Helper()
	fsys := os.DirFS("testdata")
	manifest, err := LoadManifest(fsys, ManifestFile)
	require.NoError(t, err)
	entry, ok := manifest.Entry(id)
	require.True(t, ok)
	level, err := LoadLevel(fsys, ".", entry)
	require.NoError(t, err)
	return level
}

func TestLoadLevelGeometry(t *testing.T) {
	level := loadTestLevel(t, "hub")

	assert.Equal(t, "The Hub", level.Title)
	assert.Equal(t, 128, level.Width)
	assert.Equal(t, 64, level.Height)
	assert.Equal(t, color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}, level.Background)

	assert.Equal(t, []SolidRect{
		{X: 80, Y: 32, W: 32, H: 16},
		{X: 0, Y: 48, W: 48, H: 16},
		{X: 64, Y: 48, W: 64, H: 16},
	}, level.Solids)

	require.Len(t, level.Tiles, 11)
	solid := 0
	for _, tile := range level.Tiles {
		if tile.Solid {
			solid++
			assert.Equal(t, color.RGBA{R: 0x6b, G: 0x8e, B: 0x23, A: 0xff}, tile.Fill)
		}
	}
	assert.Equal(t, 9, solid, "only collidable tiles of the ground layer are solid")
}

func TestLoadLevelSpawnsAndDoors(t *testing.T) {
	level := loadTestLevel(t, "hub")

	assert.Equal(t, []progression.SpawnPoint{
		{Tag: "spawn", Position: progression.Vec{X: 24, Y: 40}},
		{Tag: "from-snow", Position: progression.Vec{X: 100, Y: 30}},
	}, level.Spawns)

	require.Len(t, level.Doors, 3)
	assert.Equal(t, progression.DoorDefinition{
		Bounds:           progression.Rect{X: 80, Y: 16, W: 16, H: 32},
		Destination:      "snow",
		DestinationSpawn: "spawn",
	}, level.Doors[0])
	assert.Empty(t, level.Doors[1].Destination, "malformed doors are left for the registry to drop")
	assert.Equal(t, progression.DoorDefinition{
		Bounds:      progression.Rect{X: 24, Y: 4, W: 32, H: 32},
		Destination: "candy",
	}, level.Doors[2])
	assert.Empty(t, level.Markers)
}

func TestLoadLevelObjectsLayer(t *testing.T) {
	level := loadTestLevel(t, "snow")

	require.NotEmpty(t, level.Spawns)
	assert.Equal(t, progression.SpawnPoint{Tag: "spawn", Position: progression.Vec{X: 16, Y: 40}}, level.Spawns[0],
		"spawns fall back to the Objects layer")
	assert.Equal(t, 2, level.LockThreshold)
	assert.Empty(t, level.Doors)

	names := make([]string, 0, len(level.Markers))
	for _, m := range level.Markers {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"spawn", "key", "lock", "lock", "credits"}, names)
	assert.Equal(t, progression.Vec{X: 48, Y: 40}, level.Markers[1].Position)
	assert.Equal(t, progression.Vec{X: 104, Y: 32}, level.Markers[4].Position)
	assert.Equal(t, progression.Vec{X: 16, Y: 32}, level.Markers[4].Size)
}

func TestLevelDefinitionDrivesSession(t *testing.T) {
	level := loadTestLevel(t, "snow")
	save := progression.NewSaveStore()

	session := progression.NewSession(level.Definition(), "", save, progression.DefaultRules())

	assert.True(t, session.Report().Empty())
	pos, source := session.Spawn()
	assert.Equal(t, progression.Vec{X: 16, Y: 40}, pos)
	assert.Equal(t, progression.SpawnDefault, source)
	assert.Len(t, session.Collectibles().Locks(), 2)
	_, ok := session.Collectibles().Finale()
	assert.True(t, ok)
	require.Len(t, session.Doors().Doors(), 1)
	assert.True(t, session.Doors().Doors()[0].Implicit)
}

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary(os.DirFS("testdata"), ".")
	require.NoError(t, err)

	assert.Equal(t, progression.LevelID("hub"), lib.Hub)
	assert.Equal(t, []progression.LevelID{"hub", "snow"}, lib.IDs())
	_, ok := lib.Level("snow")
	assert.True(t, ok)
	_, ok = lib.Level("candy")
	assert.False(t, ok)
	assert.Equal(t, []string{"hub -> candy"}, lib.DanglingDoors())
}

func TestLoadLevelMissingMap(t *testing.T) {
	_, err := LoadLevel(os.DirFS("testdata"), ".", ManifestEntry{ID: "candy", Map: "candy.tmx"})
	assert.Error(t, err)
}
