package systems

import (
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
	"github.com/automoto/hitgrid/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the current input into the player's velocity and
// pressing angle. Gravity is left to UpdateMotion.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := GetOrCreateInput(ecs)
	body := components.Body.Get(playerEntry)
	motion := components.Motion.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	tf := TimeFactor(ecs)

	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	vel := body.Velocity()
	accel := fixed.FromFloat(cfg.Player.Acceleration).Mul(tf)
	switch {
	case left && !right:
		vel.X = gamemath.Approach(vel.X, -motion.MaxSpeed, accel)
		player.Facing = -1
	case right && !left:
		vel.X = gamemath.Approach(vel.X, motion.MaxSpeed, accel)
		player.Facing = 1
	default:
		vel.X = gamemath.ApplyFriction(vel.X, motion.Friction.Mul(tf))
	}

	if GetAction(input, cfg.ActionJump).JustPressed && motion.OnGround {
		vel.Y = -fixed.FromFloat(cfg.Player.JumpSpeed)
		motion.OnGround = false
	}
	body.SetVelocity(vel)

	// Holding press leans on whatever is in front of the player, so a
	// resting body still reports what it is pushing against.
	if GetAction(input, cfg.ActionPress).Pressed {
		angle := fixed.FromInt(0)
		if player.Facing < 0 {
			angle = fixed.FromInt(180)
		}
		body.SetPressingAngle(angle)
	} else {
		body.ClearPressingAngle()
	}
}
