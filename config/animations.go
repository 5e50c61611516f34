package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// PlayerAnimations drives the procedural player sprite. Frames index into
// the squash and leg offsets below.
var PlayerAnimations = map[StateID]AnimationDef{
	Idle: {First: 0, Last: 3, Step: 1, Speed: 12},
	Walk: {First: 0, Last: 3, Step: 1, Speed: 6},
	Jump: {First: 0, Last: 0, Step: 1, Speed: 0},
	Fall: {First: 0, Last: 0, Step: 1, Speed: 0},
}

// Per-frame vertical squash of the body, in pixels
var IdleSquash = []float32{0, 1, 1, 0}

// Per-frame leg offsets while walking, in pixels
var WalkStride = []float32{-2, 0, 2, 0}
