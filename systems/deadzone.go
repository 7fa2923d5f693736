package systems

import (
	"log"

	"github.com/automoto/hitgrid/collision"
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/shared/gamemath"
	"github.com/automoto/hitgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var inDeadZone = collision.Tagged(tags.BodyDeadZone)

// UpdateDeadZones sends the player back to its spawn point when its overlap
// hitbox touches a dead zone. Crates that fall into one are removed.
func UpdateDeadZones(ecs *ecs.ECS) {
	space := spaceOf(ecs)
	if space == nil {
		return
	}

	var lost []*donburi.Entry
	tags.Crate.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if space.IsOverlapping(body.Locator(), inDeadZone) {
			lost = append(lost, e)
		}
	})
	for _, e := range lost {
		space.Remove(components.Body.Get(e).Body)
		ecs.World.Remove(e.Entity())
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	zones := body.OverlappingBodies(inDeadZone)
	if len(zones) == 0 {
		return
	}

	for _, zone := range zones {
		if entry, ok := entryOf(zone); ok && entry.HasComponent(components.DeadZone) {
			components.DeadZone.Get(entry).Hits++
		}
	}

	player := components.Player.Get(playerEntry)
	player.Respawns++
	body.SetPosition(player.Spawn)
	body.SetVelocity(gamemath.Zero)
	components.Motion.Get(playerEntry).OnGround = false

	log.Printf("[deadzone] player respawned at %v (%d respawns)", player.Spawn, player.Respawns)
	TriggerScreenShake(ecs, cfg.Camera.RespawnShakeIntensity, cfg.Camera.RespawnShakeDuration)
}
