package progression

import (
	"errors"

	"github.com/google/uuid"
)

// State of a Level Session.
type State int

const (
	StateLoading State = iota
	StateActive
	StateTransitioning
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	}
	return "transitioning"
}

// Input is the per-tick edge-triggered input the session reacts to.
type Input struct {
	Confirm bool
	Restart bool
}

type RequestKind int

const (
	RequestLevel RequestKind = iota
	RequestCredits
)

// Request asks the host to replace the session.
type Request struct {
	Kind  RequestKind
	Level LevelID
	Spawn SpawnTag
}

type EventKind int

const (
	EventKeyCollected EventKind = iota
	EventLockUnlocked
	EventFinaleRevealed
	EventNoKeysAvailable
	EventTransition
	EventRestarted
)

// Event reports a state change that happened during a tick.
type Event struct {
	Kind        EventKind
	Collectible Collectible
	Door        Door
	Request     Request
	Unlocked    int
}

// Session drives one level: it resolves the spawn, builds doors and
// collectibles from the save store and turns player overlap plus confirm
// input into save mutations and transition requests.
type Session struct {
	id       uuid.UUID
	def      LevelDefinition
	spawnTag SpawnTag
	save     *SaveStore
	rules    Rules

	state       State
	spawn       Vec
	spawnSource SpawnSource
	doors       *DoorRegistry
	items       *CollectibleController
	report      LevelLoadReport

	request    Request
	hasRequest bool
}

// NewSession loads def at spawnTag and leaves the session Active.
func NewSession(def LevelDefinition, spawnTag SpawnTag, save *SaveStore, rules Rules) *Session {
	s := &Session{
		id:       uuid.New(),
		def:      def,
		spawnTag: spawnTag,
		save:     save,
		rules:    rules,
	}
	s.load()
	return s
}

// load rebuilds all per-level runtime state. The save store is only read.
func (s *Session) load() {
	s.state = StateLoading
	s.report = LevelLoadReport{Level: s.def.ID}
	s.hasRequest = false
	s.request = Request{}

	s.spawn, s.spawnSource = s.rules.ResolveSpawn(s.def.Spawns, s.spawnTag)
	if s.spawnTag != "" && s.spawnSource != SpawnRequested {
		s.report.add(IssueSpawnTagNotFound, "spawn %q not found in level %q", s.spawnTag, s.def.ID)
	}
	defaultSpawn, hasDefault := findSpawn(s.def.Spawns, s.rules.DefaultSpawnTag)
	if !hasDefault {
		s.report.add(IssueNoDefaultSpawn, "level %q has no %q spawn, using (%.0f, %.0f)",
			s.def.ID, s.rules.DefaultSpawnTag, s.rules.FallbackSpawn.X, s.rules.FallbackSpawn.Y)
	}

	s.doors = BuildDoorRegistry(s.def.ID, s.def.Doors, defaultSpawn, hasDefault, s.rules, &s.report)
	s.items = BuildCollectibles(s.def, s.save, s.rules, &s.report)

	s.state = StateActive
}

// Tick advances the session by one frame. It is a no-op once the session
// has requested a transition.
func (s *Session) Tick(player Rect, in Input) []Event {
	if s.state != StateActive {
		return nil
	}

	if in.Restart {
		s.load()
		return []Event{{Kind: EventRestarted}}
	}

	var events []Event

	door, onDoor := s.doors.Update(player)
	s.items.Update(player)

	if key, ok := s.items.CollectKey(player); ok {
		events = append(events, Event{Kind: EventKeyCollected, Collectible: key})
	}

	if !in.Confirm {
		return events
	}

	switch {
	case onDoor:
		req := Request{Kind: RequestLevel, Level: door.Destination, Spawn: door.DestinationSpawn}
		s.transition(req)
		events = append(events, Event{Kind: EventTransition, Door: door, Request: req})
	case s.items.FinaleActive():
		finale, _ := s.items.Finale()
		req := Request{Kind: RequestCredits}
		s.transition(req)
		events = append(events, Event{Kind: EventTransition, Collectible: finale, Request: req})
	default:
		lock, ok := s.items.ActiveLock()
		if !ok {
			break
		}
		events = append(events, s.unlock(lock)...)
	}

	return events
}

func (s *Session) unlock(lock Collectible) []Event {
	res, err := s.items.UnlockActive()
	if errors.Is(err, ErrNoKeysAvailable) {
		return []Event{{Kind: EventNoKeysAvailable, Collectible: lock, Unlocked: s.save.Get(s.def.ID).LocksUnlocked}}
	}
	if err != nil {
		return nil
	}

	events := []Event{{Kind: EventLockUnlocked, Collectible: res.Lock, Unlocked: res.Unlocked}}
	if res.FinaleRevealed {
		finale, _ := s.items.Finale()
		events = append(events, Event{Kind: EventFinaleRevealed, Collectible: finale, Unlocked: res.Unlocked})
	}
	if s.rules.RestartOnUnlock {
		req := Request{Kind: RequestLevel, Level: s.def.ID, Spawn: s.spawnTag}
		s.transition(req)
		events = append(events, Event{Kind: EventTransition, Request: req})
	}
	return events
}

func (s *Session) transition(req Request) {
	s.request = req
	s.hasRequest = true
	s.state = StateTransitioning
}

// Request returns the pending transition, if any.
func (s *Session) Request() (Request, bool) {
	return s.request, s.hasRequest
}

// ID identifies the session in log lines.
func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) State() State { return s.state }

// Level returns the id of the level being played.
func (s *Session) Level() LevelID { return s.def.ID }

func (s *Session) Definition() LevelDefinition { return s.def }

// SpawnTag returns the tag the session was asked to spawn at, which may
// differ from where the player actually spawned.
func (s *Session) SpawnTag() SpawnTag { return s.spawnTag }

// Save returns the store shared by every session of the run.
func (s *Session) Save() *SaveStore { return s.save }

// Report returns the degradations recorded by the last load.
func (s *Session) Report() LevelLoadReport { return s.report }

// Spawn returns the resolved player position and how it was found.
func (s *Session) Spawn() (Vec, SpawnSource) {
	return s.spawn, s.spawnSource
}

// Doors returns the door registry of the current load.
func (s *Session) Doors() *DoorRegistry { return s.doors }

// Collectibles returns the key, locks and finale of the current load.
func (s *Session) Collectibles() *CollectibleController { return s.items }
