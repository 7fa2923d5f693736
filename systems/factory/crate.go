package factory

import (
	"github.com/automoto/hitgrid/archetypes"
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/leveldata"
	"github.com/automoto/hitgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCrate spawns a pushable box. Crates block each other and anything
// of equal or lower priority, and are pushed by the player and platforms.
func CreateCrate(ecs *ecs.ECS, spawn leveldata.CrateSpawn) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, err
	}

	size := spawn.Size
	if size <= 0 {
		size = cfg.Crate.Size
	}

	crate := archetypes.Crate.Spawn(ecs)

	body := newBoxBody(space, spawn.X, spawn.Y, size, size, nil)
	box := body.Locator()
	body.SetCollisionHitbox(box)
	body.SetSolidHitbox(box)
	priority := spawn.Priority
	if priority <= 0 {
		priority = cfg.Crate.Priority
	}
	body.SetPriority(priority)
	body.Tags = []string{tags.BodyCrate}
	body.Data = crate
	components.Body.SetValue(crate, components.BodyData{Body: body})

	components.Motion.SetValue(crate, components.MotionData{
		Gravity:      fixed.FromFloat(cfg.Crate.Gravity),
		Friction:     fixed.FromFloat(cfg.Crate.Friction),
		MaxFallSpeed: fixed.FromFloat(cfg.Crate.MaxFallSpeed),
	})

	space.Add(body)
	return crate, nil
}
