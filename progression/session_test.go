package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hubLevel() LevelDefinition {
	return LevelDefinition{
		ID:    "hub",
		Title: "Hub",
		Spawns: []SpawnPoint{
			{Tag: "spawn", Position: Vec{X: 64, Y: 64}},
			{Tag: "from-candy", Position: Vec{X: 116, Y: 64}},
		},
		Doors: []DoorDefinition{
			{Bounds: Rect{X: 100, Y: 100, W: 32, H: 48}, Destination: "candy", DestinationSpawn: "spawn"},
			{Bounds: Rect{X: 600, Y: 100, W: 32, H: 48}, Destination: "snow"},
		},
	}
}

func snowLevel() LevelDefinition {
	return LevelDefinition{
		ID:     "snow",
		Title:  "Snow",
		Spawns: []SpawnPoint{{Tag: "spawn", Position: Vec{X: 64, Y: 64}}},
		Markers: []Marker{
			{Name: "key", Position: Vec{X: 200, Y: 64}},
			{Name: "lock", Position: Vec{X: 300, Y: 64}},
			{Name: "lock", Position: Vec{X: 400, Y: 64}},
			{Name: "credits", Position: Vec{X: 500, Y: 64}, Size: Vec{X: 32, Y: 48}},
		},
		LockThreshold: 2,
	}
}

func playerAt(x, y float64) Rect {
	return RectAround(Vec{X: x, Y: y}, 16, 24)
}

var (
	idle    = Input{}
	confirm = Input{Confirm: true}
	restart = Input{Restart: true}
)

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestNewSessionIsActive(t *testing.T) {
	s := NewSession(hubLevel(), "from-candy", NewSaveStore(), DefaultRules())

	assert.Equal(t, StateActive, s.State())
	pos, source := s.Spawn()
	assert.Equal(t, Vec{X: 116, Y: 64}, pos)
	assert.Equal(t, SpawnRequested, source)
	assert.Equal(t, 1, s.Report().Count(IssueNoCollectibleFound), "hub has no key marker")
	assert.False(t, s.Report().Has(IssueMalformedDoor))
	assert.Len(t, s.Doors().Doors(), 2, "hub has no return door")
	_, pending := s.Request()
	assert.False(t, pending)
}

func TestSessionMissingSpawnTagFallsBackToDefault(t *testing.T) {
	s := NewSession(hubLevel(), "west-entry", NewSaveStore(), DefaultRules())

	pos, source := s.Spawn()
	assert.Equal(t, Vec{X: 64, Y: 64}, pos)
	assert.Equal(t, SpawnDefault, source)
	assert.True(t, s.Report().Has(IssueSpawnTagNotFound))
	assert.False(t, s.Report().Has(IssueNoDefaultSpawn))
}

func TestSessionWithoutSpawnsStillLoads(t *testing.T) {
	def := LevelDefinition{ID: "candy"}
	s := NewSession(def, "", NewSaveStore(), DefaultRules())

	pos, _ := s.Spawn()
	assert.Equal(t, Vec{X: 32, Y: 32}, pos)
	assert.Equal(t, StateActive, s.State())
	assert.True(t, s.Report().Has(IssueNoDefaultSpawn))
	assert.True(t, s.Report().Has(IssueNoCollectibleFound))
	assert.Empty(t, s.Doors().Doors())
}

func TestSessionDoorConfirmRequestsLevel(t *testing.T) {
	s := NewSession(hubLevel(), "", NewSaveStore(), DefaultRules())

	events := s.Tick(playerAt(116, 124), idle)
	assert.Empty(t, events)
	door, ok := s.Doors().Active()
	require.True(t, ok)
	assert.Equal(t, LevelID("candy"), door.Destination)
	assert.Equal(t, StateActive, s.State(), "overlap alone does not transition")

	events = s.Tick(playerAt(116, 124), confirm)
	require.Equal(t, []EventKind{EventTransition}, eventKinds(events))

	req, ok := s.Request()
	require.True(t, ok)
	assert.Equal(t, Request{Kind: RequestLevel, Level: "candy", Spawn: "spawn"}, req)
	assert.Equal(t, StateTransitioning, s.State())

	assert.Nil(t, s.Tick(playerAt(116, 124), confirm), "no ticks after transitioning")
}

func TestSessionConfirmAwayFromTriggersDoesNothing(t *testing.T) {
	s := NewSession(hubLevel(), "", NewSaveStore(), DefaultRules())

	events := s.Tick(playerAt(400, 400), confirm)

	assert.Empty(t, events)
	assert.Equal(t, StateActive, s.State())
}

func TestSessionImplicitReturnDoor(t *testing.T) {
	s := NewSession(snowLevel(), "", NewSaveStore(), DefaultRules())

	events := s.Tick(playerAt(64, 64), confirm)

	require.Equal(t, []EventKind{EventTransition}, eventKinds(events))
	assert.True(t, events[0].Door.Implicit)
	req, _ := s.Request()
	assert.Equal(t, Request{Kind: RequestLevel, Level: "hub"}, req)
}

func TestSessionKeyCollectedOnOverlap(t *testing.T) {
	save := NewSaveStore()
	s := NewSession(snowLevel(), "", save, DefaultRules())

	events := s.Tick(playerAt(200, 64), idle)

	require.Equal(t, []EventKind{EventKeyCollected}, eventKinds(events))
	assert.Equal(t, KindKey, events[0].Collectible.Kind)
	assert.Equal(t, 1, save.KeysHeld())
	assert.True(t, save.Get("snow").KeyCollected)
	_, ok := s.Collectibles().Key()
	assert.False(t, ok)

	assert.Empty(t, s.Tick(playerAt(200, 64), idle), "key is collected once")
	assert.Equal(t, 1, save.KeysHeld())
}

func TestSessionKeyNotRespawnedAfterCollection(t *testing.T) {
	save := NewSaveStore()
	save.AddKey("snow")

	s := NewSession(snowLevel(), "", save, DefaultRules())

	_, ok := s.Collectibles().Key()
	assert.False(t, ok)
	assert.False(t, s.Report().Has(IssueNoCollectibleFound))
}

func TestSessionRestartKeepsSaveState(t *testing.T) {
	save := NewSaveStore()
	s := NewSession(snowLevel(), "spawn", save, DefaultRules())
	id := s.ID()

	s.Tick(playerAt(200, 64), idle)
	require.Equal(t, 1, save.KeysHeld())

	events := s.Tick(playerAt(200, 64), restart)

	assert.Equal(t, []EventKind{EventRestarted}, eventKinds(events))
	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, id, s.ID())
	assert.Equal(t, SpawnTag("spawn"), s.SpawnTag())
	assert.Equal(t, 1, save.KeysHeld())
	_, ok := s.Collectibles().Key()
	assert.False(t, ok, "restart does not bring the key back")
	assert.Len(t, s.Collectibles().Locks(), 2)
}

func TestSessionLockAndFinaleProgression(t *testing.T) {
	save := NewSaveStore()
	save.AddKey("snow")
	s := NewSession(snowLevel(), "", save, DefaultRules())

	require.Len(t, s.Collectibles().Locks(), 2)
	assert.False(t, s.Collectibles().FinaleInteractable())

	events := s.Tick(playerAt(300, 64), confirm)
	require.Equal(t, []EventKind{EventLockUnlocked}, eventKinds(events))
	assert.Equal(t, 1, events[0].Unlocked)
	assert.Zero(t, save.KeysHeld())
	assert.Equal(t, 1, save.Get("snow").LocksUnlocked)
	assert.False(t, s.Collectibles().FinaleInteractable())
	assert.Len(t, s.Collectibles().Locks(), 1)
	assert.Equal(t, StateActive, s.State())

	events = s.Tick(playerAt(400, 64), confirm)
	require.Equal(t, []EventKind{EventNoKeysAvailable}, eventKinds(events))
	assert.Equal(t, 1, save.Get("snow").LocksUnlocked)
	assert.Len(t, s.Collectibles().Locks(), 1)

	save.AddKey("industry")
	events = s.Tick(playerAt(400, 64), confirm)
	require.Equal(t, []EventKind{EventLockUnlocked, EventFinaleRevealed}, eventKinds(events))
	assert.Equal(t, 2, save.Get("snow").LocksUnlocked)
	assert.Zero(t, save.KeysHeld())
	assert.True(t, s.Collectibles().FinaleInteractable())
	assert.Empty(t, s.Collectibles().Locks())

	events = s.Tick(playerAt(500, 64), confirm)
	require.Equal(t, []EventKind{EventTransition}, eventKinds(events))
	req, ok := s.Request()
	require.True(t, ok)
	assert.Equal(t, RequestCredits, req.Kind)
}

func TestSessionLockWithoutKeysOnFreshSave(t *testing.T) {
	save := NewSaveStore()
	s := NewSession(snowLevel(), "", save, DefaultRules())

	events := s.Tick(playerAt(300, 64), confirm)

	require.Equal(t, []EventKind{EventNoKeysAvailable}, eventKinds(events))
	assert.Zero(t, save.KeysHeld())
	assert.Zero(t, save.Get("snow").LocksUnlocked)
	assert.Len(t, s.Collectibles().Locks(), 2)
	assert.Equal(t, StateActive, s.State())
}

func TestSessionFinaleIgnoredBeforeThreshold(t *testing.T) {
	s := NewSession(snowLevel(), "", NewSaveStore(), DefaultRules())

	events := s.Tick(playerAt(500, 64), confirm)

	assert.Empty(t, events)
	assert.False(t, s.Collectibles().FinaleActive())
	assert.Equal(t, StateActive, s.State())
}

func TestSessionRestartOnUnlockRule(t *testing.T) {
	rules := DefaultRules()
	rules.RestartOnUnlock = true
	save := NewSaveStore()
	save.AddKey("candy")
	s := NewSession(snowLevel(), "spawn", save, rules)

	events := s.Tick(playerAt(300, 64), confirm)

	assert.Equal(t, []EventKind{EventLockUnlocked, EventTransition}, eventKinds(events))
	req, ok := s.Request()
	require.True(t, ok)
	assert.Equal(t, Request{Kind: RequestLevel, Level: "snow", Spawn: "spawn"}, req)

	next := NewSession(snowLevel(), req.Spawn, save, rules)
	require.Len(t, next.Collectibles().Locks(), 1)
	assert.Equal(t, 1, next.Collectibles().Locks()[0].Slot)
}

func TestSessionRestartKeepsTheLockThatWasNotOpened(t *testing.T) {
	save := NewSaveStore()
	save.AddKey("candy")
	s := NewSession(snowLevel(), "", save, DefaultRules())

	events := s.Tick(playerAt(400, 64), confirm)
	require.Equal(t, []EventKind{EventLockUnlocked}, eventKinds(events))
	assert.Equal(t, 1, events[0].Collectible.Slot)

	events = s.Tick(playerAt(64, 64), restart)
	require.Equal(t, []EventKind{EventRestarted}, eventKinds(events))

	locks := s.Collectibles().Locks()
	require.Len(t, locks, 1)
	assert.Equal(t, 0, locks[0].Slot)
	assert.Equal(t, Vec{X: 300, Y: 64}, locks[0].Bounds.Center())

	next := NewSession(snowLevel(), "", save, DefaultRules())
	require.Len(t, next.Collectibles().Locks(), 1)
	assert.Equal(t, Vec{X: 300, Y: 64}, next.Collectibles().Locks()[0].Bounds.Center())
}
