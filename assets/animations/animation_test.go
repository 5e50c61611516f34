package animations

import (
	"testing"

	"github.com/automoto/greenie/config"
	"github.com/stretchr/testify/assert"
)

func step(a *Animation, ticks int) {
	for i := 0; i < ticks; i++ {
		a.Update()
	}
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 2)

	step(a, 3)
	assert.Equal(t, 1, a.Frame())
	step(a, 3)
	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Looped)

	step(a, 3)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 1, 1, 0.5)
	a.FreezeOnComplete = true

	step(a, 20)
	assert.Equal(t, 1, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationZeroSpeedHolds(t *testing.T) {
	a := NewAnimation(3, 5, 1, 0)
	step(a, 10)
	assert.Equal(t, 3, a.Frame())
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(0, 3, 1, 1)
	step(a, 4)
	assert.NotEqual(t, 0, a.Frame())

	a.Restart()
	assert.Equal(t, 0, a.Frame())
}

func TestAnimationPick(t *testing.T) {
	a := NewAnimation(1, 3, 1, 1)
	values := []float32{10, 20, 30}

	assert.Equal(t, float32(10), a.Pick(values))
	step(a, 2)
	assert.Equal(t, float32(20), a.Pick(values))
	assert.Equal(t, float32(0), a.Pick(nil))
}

func TestFromDefs(t *testing.T) {
	anims := FromDefs(config.PlayerAnimations)

	assert.Len(t, anims, len(config.PlayerAnimations))
	walk := anims[config.Walk]
	assert.Equal(t, config.PlayerAnimations[config.Walk].Last, walk.Last)
	assert.NotSame(t, anims[config.Idle], anims[config.Walk])
}
