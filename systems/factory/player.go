package factory

import (
	"github.com/automoto/greenie/archetypes"
	"github.com/automoto/greenie/assets/animations"
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/progression"
	"github.com/automoto/greenie/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns Greenie centered on pos.
func CreatePlayer(ecs *ecs.ECS, pos progression.Vec) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(pos.X-w/2, pos.Y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight, Y: 0},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Acceleration: cfg.Player.Acceleration,
		Drag:         cfg.Player.Drag,
		Gravity:      cfg.Physics.Gravity,
		MaxSpeed:     cfg.Player.MaxSpeed,
	})

	anims := animations.FromDefs(cfg.PlayerAnimations)
	components.Animation.SetValue(player, components.AnimationData{
		Animations:       anims,
		CurrentAnimation: anims[cfg.Idle],
		CurrentState:     cfg.Idle,
	})

	return player
}

// MovePlayer puts the player back on pos at rest.
func MovePlayer(player *donburi.Entry, pos progression.Vec) {
	obj := components.Object.Get(player)
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H/2
	obj.Update()

	physics := components.Physics.Get(player)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.OnGround = nil
}
