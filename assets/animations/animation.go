// Package animations steps frame counters for procedurally drawn sprites.
package animations

import "github.com/automoto/greenie/config"

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame; 0 holds the first frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	if a.SpeedInTps <= 0 {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Pick returns values[Frame()-First], or 0 when the frame is out of range.
func (a *Animation) Pick(values []float32) float32 {
	i := a.frame - a.First
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// FromDefs builds one animation per state.
func FromDefs(defs map[config.StateID]config.AnimationDef) map[config.StateID]*Animation {
	out := make(map[config.StateID]*Animation, len(defs))
	for state, def := range defs {
		out[state] = NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	return out
}
