package systems

import (
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		moving := false
		if e.HasComponent(components.Player) {
			moving = components.Player.Get(e).MoveX != 0
		}
		// Drag only applies when not pushing a direction
		if !moving {
			physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Drag)
		}

		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)
		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, cfg.Physics.MaxFallSpeed)
	})
}
