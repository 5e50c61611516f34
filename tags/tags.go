package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Door   = donburi.NewTag().SetName("Door")
	Key    = donburi.NewTag().SetName("Key")
	Lock   = donburi.NewTag().SetName("Lock")
	Finale = donburi.NewTag().SetName("Finale")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvDoor        = "door"
	ResolvCollectible = "collectible"
)
