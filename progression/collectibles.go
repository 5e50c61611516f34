package progression

import (
	"fmt"
	"strings"
)

type CollectibleKind int

const (
	KindKey CollectibleKind = iota
	KindLock
	KindFinale
)

func (k CollectibleKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindLock:
		return "lock"
	}
	return "finale"
}

// Collectible is a live pickup or gated object of one level.
type Collectible struct {
	ID       string
	Level    LevelID
	Kind     CollectibleKind
	Bounds   Rect
	Slot     int // position in the unlock sequence, locks only
	Consumed bool
}

// UnlockResult describes a successful lock opening.
type UnlockResult struct {
	Lock           Collectible
	Unlocked       int
	FinaleRevealed bool
}

// CollectibleController owns the key, locks and finale of one level and
// keeps them consistent with the save store.
type CollectibleController struct {
	level     LevelID
	threshold int
	save      *SaveStore

	key        *Collectible
	locks      []Collectible
	activeLock activeTrigger

	finale       *Collectible
	finaleActive bool
}

// BuildCollectibles instantiates the collectibles of def that the save state
// still allows: the key only while uncollected, one lock per slot not yet
// opened, and the finale whenever a marker for it exists.
func BuildCollectibles(def LevelDefinition, save *SaveStore, rules Rules, report *LevelLoadReport) *CollectibleController {
	c := &CollectibleController{
		level:      def.ID,
		threshold:  def.LockThreshold,
		save:       save,
		activeLock: noActiveTrigger,
	}
	rec := save.Get(def.ID)

	var lockMarkers []Marker
	var keyMarker, finaleMarker *Marker
	for i := range def.Markers {
		m := &def.Markers[i]
		switch strings.ToLower(m.Name) {
		case MarkerKey:
			if keyMarker == nil {
				keyMarker = m
			}
		case MarkerLock:
			lockMarkers = append(lockMarkers, *m)
		case MarkerCredits, MarkerFinale:
			if finaleMarker == nil {
				finaleMarker = m
			}
		}
	}

	if !rec.KeyCollected {
		if keyMarker == nil {
			report.add(IssueNoCollectibleFound, "level %q declares no %s marker", def.ID, MarkerKey)
		} else {
			c.key = &Collectible{
				ID:     c.collectibleID(KindKey, 0),
				Level:  def.ID,
				Kind:   KindKey,
				Bounds: keyMarker.bounds(rules.CollectibleSize),
			}
		}
	}

	// Unlocks without a recorded slot use up the lowest free slots.
	unrecorded := rec.LocksUnlocked - len(rec.OpenedLocks)
	for slot := 0; slot < def.LockThreshold; slot++ {
		if rec.LockOpened(slot) {
			continue
		}
		if unrecorded > 0 {
			unrecorded--
			continue
		}
		if slot >= len(lockMarkers) {
			report.add(IssueNoCollectibleFound, "level %q has no %s marker for slot %d", def.ID, MarkerLock, slot)
			continue
		}
		c.locks = append(c.locks, Collectible{
			ID:     c.collectibleID(KindLock, slot),
			Level:  def.ID,
			Kind:   KindLock,
			Bounds: lockMarkers[slot].bounds(rules.CollectibleSize),
			Slot:   slot,
		})
	}

	if finaleMarker != nil {
		c.finale = &Collectible{
			ID:     c.collectibleID(KindFinale, 0),
			Level:  def.ID,
			Kind:   KindFinale,
			Bounds: finaleMarker.bounds(rules.CollectibleSize),
		}
	}

	return c
}

func (c *CollectibleController) collectibleID(kind CollectibleKind, slot int) string {
	if kind == KindLock {
		return fmt.Sprintf("%s/%s/%d", c.level, kind, slot)
	}
	return fmt.Sprintf("%s/%s", c.level, kind)
}

// Key returns the uncollected key, if the level has one.
func (c *CollectibleController) Key() (Collectible, bool) {
	if c.key == nil {
		return Collectible{}, false
	}
	return *c.key, true
}

// Locks returns the locks still standing.
func (c *CollectibleController) Locks() []Collectible {
	return c.locks
}

func (c *CollectibleController) Finale() (Collectible, bool) {
	if c.finale == nil {
		return Collectible{}, false
	}
	return *c.finale, true
}

// FinaleInteractable reports whether the unlock threshold has been reached.
func (c *CollectibleController) FinaleInteractable() bool {
	return c.finale != nil && c.save.Get(c.level).LocksUnlocked >= c.threshold
}

// CollectKey picks up the key when the player overlaps it. The save store is
// updated and the key instance removed in the same call.
func (c *CollectibleController) CollectKey(player Rect) (Collectible, bool) {
	if c.key == nil || !c.key.Bounds.Intersects(player) {
		return Collectible{}, false
	}
	if c.save.Get(c.level).KeyCollected {
		c.key = nil
		return Collectible{}, false
	}
	c.save.AddKey(c.level)
	key := *c.key
	key.Consumed = true
	c.key = nil
	return key, true
}

// Update recomputes the active lock and whether the finale is overlapped.
func (c *CollectibleController) Update(player Rect) {
	c.activeLock.update(len(c.locks), func(i int) bool {
		return c.locks[i].Bounds.Intersects(player)
	})
	c.finaleActive = c.FinaleInteractable() && c.finale.Bounds.Intersects(player)
}

// ActiveLock returns the lock chosen by the last Update.
func (c *CollectibleController) ActiveLock() (Collectible, bool) {
	if c.activeLock == noActiveTrigger {
		return Collectible{}, false
	}
	return c.locks[c.activeLock], true
}

// FinaleActive reports whether the player stands on an interactable finale.
func (c *CollectibleController) FinaleActive() bool {
	return c.finaleActive
}

// UnlockActive spends a key on the active lock. On ErrNoKeysAvailable
// nothing changes.
func (c *CollectibleController) UnlockActive() (UnlockResult, error) {
	lock, ok := c.ActiveLock()
	if !ok {
		return UnlockResult{}, fmt.Errorf("no active lock in level %q", c.level)
	}
	wasInteractable := c.FinaleInteractable()
	unlocked, err := c.save.ConsumeKeyForLock(c.level)
	if err != nil {
		return UnlockResult{}, err
	}
	c.save.markLockOpened(c.level, lock.Slot)

	idx := int(c.activeLock)
	c.locks = append(c.locks[:idx], c.locks[idx+1:]...)
	c.activeLock = noActiveTrigger

	lock.Consumed = true
	return UnlockResult{
		Lock:           lock,
		Unlocked:       unlocked,
		FinaleRevealed: !wasInteractable && c.FinaleInteractable(),
	}, nil
}
