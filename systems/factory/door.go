package factory

import (
	"github.com/automoto/greenie/archetypes"
	"github.com/automoto/greenie/components"
	"github.com/automoto/greenie/progression"
	"github.com/automoto/greenie/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDoor spawns the visible frame of a door. Overlap is decided by the
// session, the resolv object only serves drawing and the debug overlay.
func CreateDoor(ecs *ecs.ECS, door progression.Door, title string) *donburi.Entry {
	entry := archetypes.Door.Spawn(ecs)

	b := door.Bounds
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvDoor)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Door.SetValue(entry, components.DoorData{Door: door, Title: title})
	return entry
}
