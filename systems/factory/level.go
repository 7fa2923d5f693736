package factory

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/hitgrid/archetypes"
	"github.com/automoto/hitgrid/components"
	"github.com/automoto/hitgrid/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex loads every level in dir and selects one. Out of
// range indexes wrap around.
func CreateLevelAtIndex(ecs *ecs.ECS, fsys fs.FS, dir string, levelIndex int) (*donburi.Entry, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	levelIndex %= len(names)
	if levelIndex < 0 {
		levelIndex += len(names)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: levels[names[levelIndex]],
		LevelIndex:   levelIndex,
		Names:        names,
		Levels:       levels,
	})
	return level, nil
}

// PopulateLevel creates the space and every body of the current level, then
// the player at its first spawn point and the camera on the player.
func PopulateLevel(ecs *ecs.ECS, level *leveldata.Level) (*donburi.Entry, error) {
	if _, err := CreateSpace(ecs); err != nil {
		return nil, err
	}

	for _, solid := range level.Solids {
		if _, err := CreateWall(ecs, solid); err != nil {
			return nil, fmt.Errorf("level %s: %w", level.Name, err)
		}
	}
	for _, area := range level.DeadZones {
		if _, err := CreateDeadZone(ecs, area); err != nil {
			return nil, err
		}
	}

	platforms := make(map[string]*donburi.Entry, len(level.Platforms))
	for _, spawn := range level.Platforms {
		platform, err := CreateFloatingPlatform(ecs, spawn)
		if err != nil {
			return nil, err
		}
		if spawn.Name != "" {
			platforms[spawn.Name] = platform
		}
	}

	for _, spawn := range level.Crates {
		crate, err := CreateCrate(ecs, spawn)
		if err != nil {
			return nil, err
		}
		if spawn.Leader == "" {
			continue
		}
		leader, ok := platforms[spawn.Leader]
		if !ok {
			log.Printf("[level] %s: crate at (%v, %v) names unknown platform %q", level.Name, spawn.X, spawn.Y, spawn.Leader)
			continue
		}
		components.Body.Get(crate).SetLeader(components.Body.Get(leader).Body)
	}

	spawn := level.SpawnPoints[0]
	player, err := CreatePlayer(ecs, spawn.X, spawn.Y)
	if err != nil {
		return nil, err
	}
	CreateCamera(ecs, spawn.X, spawn.Y)

	log.Printf("[level] %s: %d solids, %d crates, %d platforms, %d dead zones",
		level.Name, len(level.Solids), len(level.Crates), len(level.Platforms), len(level.DeadZones))
	return player, nil
}
