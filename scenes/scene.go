// Package scenes wires systems into the title, level and credits screens.
package scenes

import (
	"github.com/automoto/greenie/assets/levels"
	"github.com/automoto/greenie/progression"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Run is the state shared by every scene of one process: the level source
// and the progression save, which only lives in memory.
type Run struct {
	Store *levels.Store
	Save  *progression.SaveStore
}

// NewRun creates a run with an empty save.
func NewRun(store *levels.Store) *Run {
	return &Run{Store: store, Save: progression.NewSaveStore()}
}
