package components

import (
	"github.com/automoto/greenie/progression"
	"github.com/yohamta/donburi"
)

type DoorData struct {
	Door  progression.Door
	Title string // destination title shown in the prompt
}

var Door = donburi.NewComponentType[DoorData]()
