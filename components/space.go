package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the resolv collision space of the current level (singleton).
var Space = donburi.NewComponentType[resolv.Space]()
