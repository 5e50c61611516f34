package progression

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStoreGetCreatesZeroRecord(t *testing.T) {
	save := NewSaveStore()

	rec := save.Get("candy")
	assert.False(t, rec.KeyCollected)
	assert.Zero(t, rec.LocksUnlocked)
	assert.Equal(t, []LevelID{"candy"}, save.Levels())
}

func TestSaveStoreGetReturnsCopy(t *testing.T) {
	save := NewSaveStore()

	rec := save.Get("candy")
	rec.KeyCollected = true

	assert.False(t, save.Get("candy").KeyCollected)
}

func TestSaveStoreAddKey(t *testing.T) {
	save := NewSaveStore()

	save.AddKey("candy")
	save.AddKey("industry")

	assert.True(t, save.Get("candy").KeyCollected)
	assert.True(t, save.Get("industry").KeyCollected)
	assert.False(t, save.Get("snow").KeyCollected)
	assert.Equal(t, 2, save.KeysHeld())
	assert.Equal(t, []LevelID{"candy", "industry", "snow"}, save.Levels())
}

func TestConsumeKeyForLockWithoutKeys(t *testing.T) {
	save := NewSaveStore()

	unlocked, err := save.ConsumeKeyForLock("snow")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoKeysAvailable))
	assert.Zero(t, unlocked)
	assert.Zero(t, save.KeysHeld())
	assert.Zero(t, save.Get("snow").LocksUnlocked)
}

func TestConsumeKeyForLockIsAtomic(t *testing.T) {
	save := NewSaveStore()
	save.AddKey("candy")
	save.AddKey("industry")

	unlocked, err := save.ConsumeKeyForLock("snow")
	require.NoError(t, err)
	assert.Equal(t, 1, unlocked)
	assert.Equal(t, 1, save.KeysHeld())

	unlocked, err = save.ConsumeKeyForLock("snow")
	require.NoError(t, err)
	assert.Equal(t, 2, unlocked)
	assert.Zero(t, save.KeysHeld())

	_, err = save.ConsumeKeyForLock("snow")
	assert.ErrorIs(t, err, ErrNoKeysAvailable)
	assert.Equal(t, 2, save.Get("snow").LocksUnlocked)
	assert.Zero(t, save.KeysHeld())
}
