package factory

import (
	"github.com/automoto/hitgrid/archetypes"
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(ecs)

	body := newBoxBody(space, x-cfg.Player.Width/2, y-cfg.Player.Height, cfg.Player.Width, cfg.Player.Height, nil)
	box := body.Locator()
	body.SetCollisionHitbox(box)
	body.SetSolidHitbox(box)
	body.SetOverlapHitbox(box)
	body.SetPriority(cfg.Player.Priority)
	body.Tags = []string{tags.BodyPlayer}
	body.Data = player
	components.Body.SetValue(player, components.BodyData{Body: body})

	components.Player.SetValue(player, components.PlayerData{
		Facing: 1,
		Spawn:  body.Position(),
	})
	components.Motion.SetValue(player, components.MotionData{
		Gravity:      fixed.FromFloat(cfg.Player.Gravity),
		Friction:     fixed.FromFloat(cfg.Player.Friction),
		MaxSpeed:     fixed.FromFloat(cfg.Player.MaxSpeed),
		MaxFallSpeed: fixed.FromFloat(cfg.Player.MaxFallSpeed),
	})

	space.Add(body)
	return player, nil
}
