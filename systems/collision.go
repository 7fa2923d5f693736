package systems

import (
	"github.com/automoto/hitgrid/collision"
	"github.com/automoto/hitgrid/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollision runs one tick of the collision space and reads back which
// bodies ended up resting on something.
func UpdateCollision(ecs *ecs.ECS) {
	space := spaceOf(ecs)
	if space == nil {
		return
	}
	sandbox := GetOrCreateSandbox(ecs)

	space.Tick(timeFactorOf(sandbox))
	sandbox.Ticks++

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		motion := components.Motion.Get(e)
		motion.OnGround = body.Touching(collision.DirDown)
	})
}

func spaceOf(ecs *ecs.ECS) *collision.Space {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry).Space
}

// entryOf returns the ECS entry a body was created for.
func entryOf(body *collision.Body) (*donburi.Entry, bool) {
	entry, ok := body.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return nil, false
	}
	return entry, true
}
