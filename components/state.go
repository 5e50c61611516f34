package components

import (
	"github.com/automoto/greenie/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Set switches to state, resetting the timer when it changes.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
