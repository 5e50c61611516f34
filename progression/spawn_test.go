package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSpawn(t *testing.T) {
	points := []SpawnPoint{
		{Tag: "spawn", Position: Vec{X: 64, Y: 200}},
		{Tag: "east-entry", Position: Vec{X: 900, Y: 180}},
	}

	tests := []struct {
		name      string
		points    []SpawnPoint
		requested SpawnTag
		want      Vec
		source    SpawnSource
	}{
		{"requested tag present", points, "east-entry", Vec{X: 900, Y: 180}, SpawnRequested},
		{"no tag uses default", points, "", Vec{X: 64, Y: 200}, SpawnDefault},
		{"unknown tag falls back to default", points, "west-entry", Vec{X: 64, Y: 200}, SpawnDefault},
		{"no default uses fixed fallback", points[1:], "", Vec{X: 32, Y: 32}, SpawnFallback},
		{"empty set never fails", nil, "west-entry", Vec{X: 32, Y: 32}, SpawnFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := DefaultRules().ResolveSpawn(tt.points, tt.requested)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.source, source)
			assert.Equal(t, tt.want, ResolveSpawn(tt.points, tt.requested))
		})
	}
}

func TestResolveSpawnFirstMatchWins(t *testing.T) {
	points := []SpawnPoint{
		{Tag: "spawn", Position: Vec{X: 1, Y: 1}},
		{Tag: "spawn", Position: Vec{X: 2, Y: 2}},
	}

	assert.Equal(t, Vec{X: 1, Y: 1}, ResolveSpawn(points, ""))
}
