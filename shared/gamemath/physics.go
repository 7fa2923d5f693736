package gamemath

import "github.com/automoto/hitgrid/shared/fixed"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction fixed.F) fixed.F {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max fixed.F) fixed.F {
	return fixed.Clamp(speed, -max, max)
}

// Approach moves current toward target by at most step.
func Approach(current, target, step fixed.F) fixed.F {
	if current < target {
		return fixed.Min(current+step, target)
	}
	if current > target {
		return fixed.Max(current-step, target)
	}
	return current
}
