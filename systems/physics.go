package systems

import (
	"github.com/automoto/hitgrid/components"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion applies gravity and ground friction to every moving body.
// Bodies that follow a leader are carried by it and skip gravity.
func UpdateMotion(ecs *ecs.ECS) {
	tf := TimeFactor(ecs)

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		motion := components.Motion.Get(e)
		vel := body.Velocity()

		if body.Leader() != nil {
			vel.Y = 0
		} else {
			vel.Y = fixed.Min(vel.Y+motion.Gravity.Mul(tf), motion.MaxFallSpeed)
		}

		// The player handles its own horizontal speed in UpdatePlayer.
		if !e.HasComponent(components.Player) && motion.OnGround {
			vel.X = gamemath.ApplyFriction(vel.X, motion.Friction.Mul(tf))
		}
		if motion.MaxSpeed > 0 {
			vel.X = gamemath.ClampSpeed(vel.X, motion.MaxSpeed)
		}

		body.SetVelocity(vel)
	})
}
