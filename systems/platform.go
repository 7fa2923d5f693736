package systems

import (
	"github.com/automoto/hitgrid/collision"
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every floating platform along its tween and
// moves it there before the tick. Platforms push whatever is in their way
// and carry their followers. Bodies that stood on a platform last tick are
// carried sideways with it.
func UpdatePlatforms(ecs *ecs.ECS) {
	space := spaceOf(ecs)
	if space == nil {
		return
	}
	dt := float32(TimeFactor(ecs).Float() / float64(cfg.C.TickRate))

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		body := components.Body.Get(e).Body

		value, _, done := platform.Sequence.Update(dt)
		if done {
			platform.Sequence.Reset()
		}

		target := platform.Origin.Add(platform.Travel.Scale(fixed.FromFloat(float64(value))))
		delta := target.Sub(body.Position())
		if delta.IsZero() {
			return
		}

		riders := ridersOf(ecs, body)
		moved := space.Move(body, delta)
		if moved.X == 0 {
			return
		}
		for _, rider := range riders {
			space.Move(rider, gamemath.Vector{X: moved.X})
		}
	})
}

// ridersOf returns the free bodies that landed on platform last tick.
func ridersOf(ecs *ecs.ECS, platform *collision.Body) []*collision.Body {
	var riders []*collision.Body
	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e).Body
		if body.Leader() != nil {
			return
		}
		for _, c := range body.Contacts() {
			if c.Other == platform && c.Dir == collision.DirDown {
				riders = append(riders, body)
				return
			}
		}
	})
	return riders
}
