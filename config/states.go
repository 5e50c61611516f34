package config

// StateID identifies a player animation state
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Jump
	Fall
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Walk:      "walk",
	Jump:      "jump",
	Fall:      "fall",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
