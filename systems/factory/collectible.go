package factory

import (
	"github.com/automoto/greenie/archetypes"
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/progression"
	"github.com/automoto/greenie/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollectible spawns the entity mirroring a key, lock or finale.
func CreateCollectible(ecs *ecs.ECS, item progression.Collectible) *donburi.Entry {
	var entry *donburi.Entry
	switch item.Kind {
	case progression.KindKey:
		entry = archetypes.Key.Spawn(ecs)
	case progression.KindLock:
		entry = archetypes.Lock.Spawn(ecs)
	default:
		entry = archetypes.Finale.Spawn(ecs)
	}

	b := item.Bounds
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvCollectible)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	data := components.CollectibleData{ID: item.ID, Kind: item.Kind}
	if item.Kind == progression.KindKey {
		data.Bob = NewBob(0, -cfg.Collectible.BobHeight)
		data.Rising = true
	}
	components.Collectible.SetValue(entry, data)
	return entry
}

// NewBob returns one half cycle of the key bob.
func NewBob(from, to float32) *gween.Tween {
	return gween.New(from, to, cfg.Collectible.BobSeconds, ease.InOutSine)
}
