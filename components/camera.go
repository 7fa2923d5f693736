package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
	// Shake is added to Position when drawing, so following stays smooth.
	Shake math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
