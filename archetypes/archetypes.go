package archetypes

import (
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Body,
		components.Platform,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Motion,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Body,
		components.Motion,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Body,
		components.DeadZone,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
