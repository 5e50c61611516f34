package progression

import (
	"errors"
	"slices"
	"sort"
)

// ErrNoKeysAvailable is returned when a lock is tried with an empty inventory.
var ErrNoKeysAvailable = errors.New("no keys available")

// PerLevelSave is the progression record of one level.
type PerLevelSave struct {
	KeyCollected  bool
	LocksUnlocked int

	// OpenedLocks lists the lock slots opened through a session, in the
	// order they were opened.
	OpenedLocks []int
}

// LockOpened reports whether slot was recorded as opened.
func (p PerLevelSave) LockOpened(slot int) bool {
	return slices.Contains(p.OpenedLocks, slot)
}

// SaveStore is the process-wide progression state. It is created once at
// startup and handed to every Level Session; it lives until the process
// exits. Access is single-threaded (one game tick at a time).
type SaveStore struct {
	levels   map[LevelID]*PerLevelSave
	keysHeld int
}

// NewSaveStore returns an empty store with no keys held.
func NewSaveStore() *SaveStore {
	return &SaveStore{levels: make(map[LevelID]*PerLevelSave)}
}

// Get returns a copy of the record for id, creating a zero record on first
// access.
func (s *SaveStore) Get(id LevelID) PerLevelSave {
	rec := *s.record(id)
	rec.OpenedLocks = slices.Clone(rec.OpenedLocks)
	return rec
}

func (s *SaveStore) record(id LevelID) *PerLevelSave {
	rec, ok := s.levels[id]
	if !ok {
		rec = &PerLevelSave{}
		s.levels[id] = rec
	}
	return rec
}

// KeysHeld returns the global key inventory.
func (s *SaveStore) KeysHeld() int {
	return s.keysHeld
}

// AddKey marks the key of id as collected and adds it to the inventory.
// Callers check KeyCollected first; calling twice adds two keys.
func (s *SaveStore) AddKey(id LevelID) {
	s.record(id).KeyCollected = true
	s.keysHeld++
}

// ConsumeKeyForLock spends one key on a lock of id and returns the level's
// new unlocked count. With no keys held nothing changes and
// ErrNoKeysAvailable is returned.
func (s *SaveStore) ConsumeKeyForLock(id LevelID) (int, error) {
	if s.keysHeld <= 0 {
		return s.Get(id).LocksUnlocked, ErrNoKeysAvailable
	}
	rec := s.record(id)
	s.keysHeld--
	rec.LocksUnlocked++
	return rec.LocksUnlocked, nil
}

// markLockOpened records which lock slot the last ConsumeKeyForLock paid for.
func (s *SaveStore) markLockOpened(id LevelID, slot int) {
	rec := s.record(id)
	if !slices.Contains(rec.OpenedLocks, slot) {
		rec.OpenedLocks = append(rec.OpenedLocks, slot)
	}
}

// Levels lists every level with a record, sorted.
func (s *SaveStore) Levels() []LevelID {
	ids := make([]LevelID, 0, len(s.levels))
	for id := range s.levels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
