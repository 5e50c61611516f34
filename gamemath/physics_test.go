package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	assert.InDelta(t, 1.5, ApplyFriction(2, 0.5), 1e-9)
	assert.InDelta(t, -1.5, ApplyFriction(-2, 0.5), 1e-9)
	// Never overshoots past zero
	assert.Equal(t, 0.0, ApplyFriction(0.3, 0.5))
	assert.Equal(t, 0.0, ApplyFriction(-0.3, 0.5))
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 4.0, ClampSpeed(9, 4))
	assert.Equal(t, -4.0, ClampSpeed(-9, 4))
	assert.Equal(t, 2.5, ClampSpeed(2.5, 4))
}

func TestApplyGravity(t *testing.T) {
	assert.InDelta(t, 1.25, ApplyGravity(1, 0.25, 12), 1e-9)
	assert.Equal(t, 12.0, ApplyGravity(11.9, 0.25, 12))
}

func TestApproach(t *testing.T) {
	assert.InDelta(t, 10, Approach(0, 100, 0.1), 1e-9)
	assert.InDelta(t, 100, Approach(0, 100, 1), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(1, 5, 10))
	assert.Equal(t, 10.0, Clamp(12, 5, 10))
	assert.Equal(t, 7.0, Clamp(7, 5, 10))
	// Inverted range centres
	assert.Equal(t, 5.0, Clamp(0, 10, 0))
}
