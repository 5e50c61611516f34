package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCollectiblesFreshSave(t *testing.T) {
	report := &LevelLoadReport{}
	c := BuildCollectibles(snowLevel(), NewSaveStore(), DefaultRules(), report)

	key, ok := c.Key()
	require.True(t, ok)
	assert.Equal(t, "snow/key", key.ID)
	assert.Equal(t, Rect{X: 191, Y: 55, W: 18, H: 18}, key.Bounds)

	locks := c.Locks()
	require.Len(t, locks, 2)
	assert.Equal(t, "snow/lock/0", locks[0].ID)
	assert.Equal(t, 0, locks[0].Slot)
	assert.Equal(t, 1, locks[1].Slot)
	assert.Equal(t, Vec{X: 400, Y: 64}, locks[1].Bounds.Center())

	finale, ok := c.Finale()
	require.True(t, ok)
	assert.Equal(t, Rect{X: 484, Y: 40, W: 32, H: 48}, finale.Bounds)
	assert.False(t, c.FinaleInteractable())
	assert.True(t, report.Empty())
}

func TestBuildCollectiblesResumesLockSlots(t *testing.T) {
	t.Run("one lock already open", func(t *testing.T) {
		save := NewSaveStore()
		save.AddKey("candy")
		_, err := save.ConsumeKeyForLock("snow")
		require.NoError(t, err)

		c := BuildCollectibles(snowLevel(), save, DefaultRules(), &LevelLoadReport{})

		require.Len(t, c.Locks(), 1)
		assert.Equal(t, 1, c.Locks()[0].Slot)
		assert.Equal(t, Vec{X: 400, Y: 64}, c.Locks()[0].Bounds.Center())
		assert.False(t, c.FinaleInteractable())
	})

	t.Run("threshold reached", func(t *testing.T) {
		save := NewSaveStore()
		save.AddKey("candy")
		save.AddKey("industry")
		for i := 0; i < 2; i++ {
			_, err := save.ConsumeKeyForLock("snow")
			require.NoError(t, err)
		}

		c := BuildCollectibles(snowLevel(), save, DefaultRules(), &LevelLoadReport{})

		assert.Empty(t, c.Locks())
		assert.True(t, c.FinaleInteractable())
	})
}

func TestBuildCollectiblesMissingMarkers(t *testing.T) {
	def := snowLevel()
	def.Markers = []Marker{
		{Name: "Lock", Position: Vec{X: 300, Y: 64}},
	}
	report := &LevelLoadReport{}

	c := BuildCollectibles(def, NewSaveStore(), DefaultRules(), report)

	_, ok := c.Key()
	assert.False(t, ok)
	require.Len(t, c.Locks(), 1, "marker names match case-insensitively")
	_, ok = c.Finale()
	assert.False(t, ok)
	assert.Equal(t, 2, report.Count(IssueNoCollectibleFound), "one for the key, one for lock slot 1")
}

func TestCollectKeyOnlyOnOverlap(t *testing.T) {
	save := NewSaveStore()
	c := BuildCollectibles(snowLevel(), save, DefaultRules(), &LevelLoadReport{})

	_, ok := c.CollectKey(playerAt(150, 64))
	assert.False(t, ok)
	assert.Zero(t, save.KeysHeld())

	key, ok := c.CollectKey(playerAt(205, 64))
	require.True(t, ok)
	assert.True(t, key.Consumed)
	assert.Equal(t, 1, save.KeysHeld())

	_, ok = c.CollectKey(playerAt(205, 64))
	assert.False(t, ok)
	assert.Equal(t, 1, save.KeysHeld())
}

func TestUnlockActiveRequiresActiveLock(t *testing.T) {
	save := NewSaveStore()
	save.AddKey("candy")
	c := BuildCollectibles(snowLevel(), save, DefaultRules(), &LevelLoadReport{})

	c.Update(playerAt(150, 64))
	_, err := c.UnlockActive()
	require.Error(t, err)
	assert.Equal(t, 1, save.KeysHeld())

	c.Update(playerAt(400, 64))
	lock, ok := c.ActiveLock()
	require.True(t, ok)
	assert.Equal(t, 1, lock.Slot)

	res, err := c.UnlockActive()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Lock.Slot)
	assert.Equal(t, 1, res.Unlocked)
	assert.False(t, res.FinaleRevealed)
	_, ok = c.ActiveLock()
	assert.False(t, ok)
}

func TestFinaleActiveOnlyAfterThreshold(t *testing.T) {
	save := NewSaveStore()
	c := BuildCollectibles(snowLevel(), save, DefaultRules(), &LevelLoadReport{})

	c.Update(playerAt(500, 64))
	assert.False(t, c.FinaleActive())

	save.AddKey("candy")
	save.AddKey("industry")
	_, _ = save.ConsumeKeyForLock("snow")
	_, _ = save.ConsumeKeyForLock("snow")

	c.Update(playerAt(500, 64))
	assert.True(t, c.FinaleActive())

	c.Update(playerAt(600, 64))
	assert.False(t, c.FinaleActive())
}

func TestBuildCollectiblesSkipsOpenedLockSlots(t *testing.T) {
	save := NewSaveStore()
	save.AddKey("candy")
	_, err := save.ConsumeKeyForLock("snow")
	require.NoError(t, err)
	save.markLockOpened("snow", 1)

	c := BuildCollectibles(snowLevel(), save, DefaultRules(), &LevelLoadReport{})

	require.Len(t, c.Locks(), 1)
	assert.Equal(t, 0, c.Locks()[0].Slot)
	assert.Equal(t, Vec{X: 300, Y: 64}, c.Locks()[0].Bounds.Center())
	assert.True(t, save.Get("snow").LockOpened(1))
	assert.False(t, save.Get("snow").LockOpened(0))
}
