package systems

import (
	"math"

	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/progression"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	frozen := !sessionActive(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		state := components.State.Get(playerEntry)
		animData := components.Animation.Get(playerEntry)

		if frozen {
			// A transition is underway: let the body settle, ignore input
			player.MoveX = 0
		} else {
			handleJumpInput(ecs, GetAction(input, cfg.ActionJump), physics)
			handleMovementInput(GetAction(input, cfg.ActionMoveLeft), GetAction(input, cfg.ActionMoveRight), player, physics)
		}

		updatePlayerState(player, physics, state)
		updatePlayerAnimation(state, animData)
		updateFootsteps(ecs, player, physics, state)
	})
}

func handleJumpInput(e *ecs.ECS, jumpAction components.ActionState, physics *components.PhysicsData) {
	if !jumpAction.JustPressed || physics.OnGround == nil {
		return
	}
	physics.SpeedY = -cfg.Player.JumpSpeed
	PlaySFX(e, cfg.SoundJump)
}

func handleMovementInput(moveLeftAction, moveRightAction components.ActionState, player *components.PlayerData, physics *components.PhysicsData) {
	player.MoveX = 0
	if moveRightAction.Pressed {
		player.MoveX++
	}
	if moveLeftAction.Pressed {
		player.MoveX--
	}

	// Opposite directions cancel out and drag takes over
	switch {
	case player.MoveX > 0:
		physics.SpeedX += physics.Acceleration
		player.Direction.X = cfg.DirectionRight
	case player.MoveX < 0:
		physics.SpeedX -= physics.Acceleration
		player.Direction.X = cfg.DirectionLeft
	}
}

func updatePlayerState(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	switch {
	case physics.OnGround == nil && physics.SpeedY < 0:
		state.Set(cfg.Jump)
	case physics.OnGround == nil:
		state.Set(cfg.Fall)
	case player.MoveX != 0 || math.Abs(physics.SpeedX) > 0.5:
		state.Set(cfg.Walk)
	default:
		state.Set(cfg.Idle)
	}
}

func updatePlayerAnimation(state *components.StateData, animData *components.AnimationData) {
	if animData == nil {
		return
	}

	animData.SetAnimation(state.CurrentState)
	if animData.CurrentAnimation != nil {
		animData.CurrentAnimation.Update()
	}
}

// updateFootsteps cycles through the step sounds while walking on ground.
func updateFootsteps(e *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	if state.CurrentState != cfg.Walk || physics.OnGround == nil {
		player.StepTimer = 0
		return
	}
	if player.StepTimer > 0 {
		player.StepTimer--
		return
	}
	PlaySFX(e, cfg.StepSounds[player.StepIndex%len(cfg.StepSounds)])
	player.StepIndex++
	player.StepTimer = cfg.Player.StepInterval
}

// sessionActive reports whether the level session accepts input.
func sessionActive(ecs *ecs.ECS) bool {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return true
	}
	session := components.Level.Get(entry).Session
	return session == nil || session.State() == progression.StateActive
}
