package factory

import (
	"github.com/automoto/hitgrid/archetypes"
	"github.com/automoto/hitgrid/collision"
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/shared/leveldata"
	"github.com/automoto/hitgrid/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// platformCollider lets platforms travel through walls and everything they
// cannot push.
var platformCollider = collision.ColliderFunc(func(self, other *collision.Body, dir collision.Direction) collision.Response {
	return collision.ResponseNone
})

// CreateFloatingPlatform spawns a kinematic platform. Its top is solid, and
// its high priority lets it push players and crates out of its way.
func CreateFloatingPlatform(ecs *ecs.ECS, spawn leveldata.PlatformSpawn) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, err
	}

	seconds := spawn.Seconds
	if seconds <= 0 {
		seconds = cfg.Platform.DefaultSeconds
	}
	dx, dy := spawn.DX, spawn.DY
	if dx == 0 && dy == 0 {
		dy = cfg.Platform.DefaultDY
	}

	platform := archetypes.FloatingPlatform.Spawn(ecs)

	body := newBoxBody(space, spawn.X, spawn.Y, spawn.W, spawn.H, platformCollider)
	box := body.Locator()
	box.SetSurfaces(collision.DirUp)
	body.SetCollisionHitbox(box)
	body.SetSolidHitbox(box)
	body.SetPriority(cfg.Platform.Priority)
	body.Tags = []string{tags.BodyPlatform, tags.BodyOneWay}
	body.Data = platform
	components.Body.SetValue(platform, components.BodyData{Body: body})

	// The floating platform moves using a *gween.Sequence of tweens, moving it
	// back and forth. The tweened value is the fraction of the travel covered.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, float32(seconds), ease.InOutSine),
		gween.New(1, 0, float32(seconds), ease.InOutSine),
	)
	components.Platform.SetValue(platform, components.PlatformData{
		Name:     spawn.Name,
		Origin:   body.Position(),
		Travel:   vec(dx, dy),
		Sequence: tw,
	})

	space.Add(body)
	return platform, nil
}
