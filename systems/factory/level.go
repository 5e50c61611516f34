package factory

import (
	"github.com/automoto/greenie/archetypes"
	"github.com/automoto/greenie/assets"
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/leveldata"
	"github.com/automoto/greenie/progression"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space, walls and the level singleton for
// a running session.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, session *progression.Session) *donburi.Entry {
	CreateSpace(ecs, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	for _, s := range level.Solids {
		CreateWall(ecs, s.X, s.Y, s.W, s.H)
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		Level:      level,
		Background: assets.BakeBackground(level),
		Session:    session,
	})
	return entry
}
