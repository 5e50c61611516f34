// Package gamemath holds the pure movement math shared by the physics,
// collision and camera systems.
package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyGravity adds one tick of gravity, capped at maxFall.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}

// Approach moves current a fraction of the way to target. A factor of 1
// snaps.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Clamp keeps v within [lo, hi]. When the range is inverted the midpoint
// is returned, which centres a view larger than the area it shows.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
