package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector
	MoveX     float64 // -1, 0 or 1 from input this tick

	// Footsteps
	StepTimer int
	StepIndex int
}

var Player = donburi.NewComponentType[PlayerData]()
