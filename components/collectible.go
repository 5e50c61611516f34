package components

import (
	"github.com/automoto/greenie/progression"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CollectibleData links an entity to a key, lock or finale of the session.
type CollectibleData struct {
	ID   string
	Kind progression.CollectibleKind

	// Bob animates the key up and down, one half cycle per tween
	Bob    *gween.Tween
	Rising bool
	Offset float32
}

var Collectible = donburi.NewComponentType[CollectibleData]()
