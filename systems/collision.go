package systems

import (
	"math"

	"github.com/automoto/greenie/components"
	"github.com/automoto/greenie/gamemath"
	"github.com/automoto/greenie/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCollisions(ecs *ecs.ECS) {
	levelW, levelH := levelSize(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveObjectHorizontalCollision(physics, obj.Object)
		resolveObjectVerticalCollision(physics, obj.Object)
		clampToWorld(physics, obj.Object, levelW, levelH)
	})
}

// resolveObjectHorizontalCollision moves the object by its speed, stopping at walls
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if shouldStopHorizontalMovement(object, check) {
		physics.SpeedX = 0
		dx = check.ContactWithObject(check.ObjectsByTags(tags.ResolvSolid)[0]).X()
	}

	object.X += dx
}

// resolveObjectVerticalCollision applies vertical speed and lands on solids
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := clampVerticalSpeed(physics.SpeedY)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		object.Y += dy
		return
	}

	if dy < 0 {
		// bonk
		physics.SpeedY = 0
		dy = check.ContactWithObject(solids[0]).Y()
	} else {
		physics.OnGround = solids[0]
		physics.SpeedY = 0
		dy = check.ContactWithObject(solids[0]).Y()
	}

	object.Y += dy
}

func shouldStopHorizontalMovement(object *resolv.Object, check *resolv.Collision) bool {
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return false
	}

	objectBottom := object.Y + object.H
	for _, solid := range solids {
		if objectBottom > solid.Y && object.Y < solid.Y+solid.H {
			return true
		}
	}
	return false
}

func clampVerticalSpeed(speedY float64) float64 {
	return gamemath.ClampSpeed(speedY, 16)
}

// clampToWorld keeps the object inside the level, landing it on the bottom edge.
func clampToWorld(physics *components.PhysicsData, object *resolv.Object, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if object.X < 0 {
		object.X = 0
		physics.SpeedX = 0
	} else if object.X+object.W > w {
		object.X = w - object.W
		physics.SpeedX = 0
	}
	if object.Y < 0 {
		object.Y = 0
		physics.SpeedY = math.Max(physics.SpeedY, 0)
	} else if object.Y+object.H >= h {
		object.Y = h - object.H
		physics.SpeedY = 0
		if physics.OnGround == nil {
			physics.OnGround = object
		}
	}
}

func levelSize(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0, 0
	}
	level := components.Level.Get(entry).Level
	if level == nil {
		return 0, 0
	}
	return float64(level.Width), float64(level.Height)
}
