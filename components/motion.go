package components

import (
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/yohamta/donburi"
)

// MotionData drives a body's velocity between ticks.
type MotionData struct {
	Gravity      fixed.F
	Friction     fixed.F
	MaxSpeed     fixed.F
	MaxFallSpeed fixed.F
	// OnGround is set after each tick when the body rests on something.
	OnGround bool
}

var Motion = donburi.NewComponentType[MotionData]()
