package components

import (
	"github.com/automoto/greenie/assets/animations"
	"github.com/automoto/greenie/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentState = state
		return
	}
	if a.CurrentAnimation != anim {
		a.CurrentAnimation = anim
		a.CurrentState = state
		a.CurrentAnimation.Restart()
		a.CurrentAnimation.Looped = false
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
