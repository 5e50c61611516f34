package progression

// Marker names recognised in level data.
const (
	MarkerKey     = "key"
	MarkerLock    = "lock"
	MarkerCredits = "credits"
	MarkerFinale  = "finale"
)

// Rules carries the tunables the state machine depends on.
type Rules struct {
	HubLevel        LevelID
	DefaultSpawnTag SpawnTag
	FallbackSpawn   Vec

	// ReturnDoorSize is the side of the implicit door placed on the default
	// spawn of every non-hub level.
	ReturnDoorSize float64

	// CollectibleSize is used for markers authored without a size.
	CollectibleSize float64

	// RestartOnUnlock reloads the level after every successful unlock
	// instead of mutating the live session.
	RestartOnUnlock bool
}

// DefaultRules returns the rules the game ships with.
func DefaultRules() Rules {
	return Rules{
		HubLevel:        "hub",
		DefaultSpawnTag: "spawn",
		FallbackSpawn:   Vec{X: 32, Y: 32},
		ReturnDoorSize:  32,
		CollectibleSize: 18,
	}
}
