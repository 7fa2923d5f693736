package factory

import (
	"github.com/automoto/hitgrid/archetypes"
	"github.com/automoto/hitgrid/components"
	"github.com/automoto/hitgrid/shared/leveldata"
	"github.com/automoto/hitgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible overlap area that sends the player
// back to its spawn when touched
func CreateDeadZone(ecs *ecs.ECS, area leveldata.Area) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, err
	}

	zone := archetypes.DeadZone.Spawn(ecs)

	body := newBoxBody(space, area.X, area.Y, area.W, area.H, nil)
	body.SetOverlapHitbox(body.Locator())
	body.Tags = []string{tags.BodyDeadZone}
	body.Data = zone
	components.Body.SetValue(zone, components.BodyData{Body: body})

	space.Add(body)
	return zone, nil
}
