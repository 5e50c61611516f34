package archetypes

import (
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
	)
	Key = newArchetype(
		tags.Key,
		components.Collectible,
		components.Object,
	)
	Lock = newArchetype(
		tags.Lock,
		components.Collectible,
		components.Object,
	)
	Finale = newArchetype(
		tags.Finale,
		components.Collectible,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Notice = newArchetype(
		components.Notice,
	)
	Fade = newArchetype(
		components.Fade,
	)
	Title = newArchetype(
		components.Title,
	)
	Credits = newArchetype(
		components.Credits,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
