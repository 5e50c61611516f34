package leveldata

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/automoto/greenie/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/levels.yaml": {Data: []byte(`
hub: hub
levels:
  - id: hub
    map: hub.tmx
  - id: snow
    map: snow.tmx
    title: Snowy Peaks
    background: "#ddeeff"
    lockThreshold: 2
`)},
	}

	m, err := LoadManifest(fsys, "levels/levels.yaml")
	require.NoError(t, err)

	assert.Equal(t, progression.LevelID("hub"), m.Hub)
	require.Len(t, m.Levels, 2)
	snow, ok := m.Entry("snow")
	require.True(t, ok)
	assert.Equal(t, ManifestEntry{
		ID:            "snow",
		Map:           "snow.tmx",
		Title:         "Snowy Peaks",
		Background:    "#ddeeff",
		LockThreshold: 2,
	}, snow)
	_, ok = m.Entry("candy")
	assert.False(t, ok)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(fstest.MapFS{}, "levels.yaml")
	assert.Error(t, err)
}

func TestParseManifestRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "hub: [\n"},
		{"no hub", "levels:\n  - id: hub\n    map: hub.tmx\n"},
		{"hub not listed", "hub: hub\nlevels:\n  - id: snow\n    map: snow.tmx\n"},
		{"level without id", "hub: hub\nlevels:\n  - map: hub.tmx\n"},
		{"level without map", "hub: hub\nlevels:\n  - id: hub\n"},
		{"duplicate level", "hub: hub\nlevels:\n  - id: hub\n    map: a.tmx\n  - id: hub\n    map: b.tmx\n"},
		{"negative threshold", "hub: hub\nlevels:\n  - id: hub\n    map: hub.tmx\n    lockThreshold: -1\n"},
		{"bad colour", "hub: hub\nlevels:\n  - id: hub\n    map: hub.tmx\n    background: teal\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)

	c, err = ParseColor("10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}
