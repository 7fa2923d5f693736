package core

import (
	"encoding/binary"
	"fmt"
	"io/fs"

	"github.com/automoto/hitgrid/collision"
	"github.com/automoto/hitgrid/components"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/systems"
	"github.com/automoto/hitgrid/systems/factory"
	"github.com/automoto/hitgrid/tags"
	"github.com/cespare/xxhash/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Runner simulates one level without a window, feeding the player from a
// script instead of devices.
type Runner struct {
	ecs    *ecs.ECS
	script Script
	tick   int
	level  string
}

// NewRunner builds the world for the level at levelIndex in dir.
func NewRunner(fsys fs.FS, dir string, levelIndex int, script Script) (*Runner, error) {
	e := ecs.NewECS(donburi.NewWorld())
	r := &Runner{ecs: e, script: script}

	e.AddSystem(r.updateInput)
	systems.AddSimulationSystems(e)

	level, err := factory.CreateLevelAtIndex(e, fsys, dir, levelIndex)
	if err != nil {
		return nil, err
	}
	levelData := components.Level.Get(level)
	if _, err := factory.PopulateLevel(e, levelData.CurrentLevel); err != nil {
		return nil, fmt.Errorf("populate %s: %w", levelData.CurrentLevel.Name, err)
	}
	r.level = levelData.CurrentLevel.Name
	return r, nil
}

func (r *Runner) updateInput(e *ecs.ECS) {
	systems.SetInput(systems.GetOrCreateInput(e), r.script.At(r.tick))
	r.tick++
}

// Level returns the name of the level being simulated.
func (r *Runner) Level() string { return r.level }

// Step runs a single tick.
func (r *Runner) Step() { r.ecs.Update() }

// Run runs ticks ticks.
func (r *Runner) Run(ticks int) {
	for i := 0; i < ticks; i++ {
		r.Step()
	}
}

// Ticks returns the number of ticks simulated so far.
func (r *Runner) Ticks() int {
	return systems.GetOrCreateSandbox(r.ecs).Ticks
}

// World returns the ECS world of the simulation.
func (r *Runner) World() donburi.World { return r.ecs.World }

// Space returns the collision space of the simulation.
func (r *Runner) Space() *collision.Space {
	entry, ok := components.Space.First(r.ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).Space
}

// Player returns the player's body.
func (r *Runner) Player() *collision.Body {
	entry, ok := tags.Player.First(r.ecs.World)
	if !ok {
		return nil
	}
	return components.Body.Get(entry).Body
}

// Digest returns a hash of every body's id, position and velocity in id
// order. Two runs of the same level and script produce the same digest.
func (r *Runner) Digest() uint64 {
	return Digest(r.Space())
}

// Digest hashes the state of every body in space.
func Digest(space *collision.Space) uint64 {
	h := xxhash.New()
	if space == nil {
		return h.Sum64()
	}

	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF := func(f fixed.F) { put(uint64(f)) }

	for _, b := range space.Bodies() {
		put(b.ID())
		pos, vel := b.Position(), b.Velocity()
		putF(pos.X)
		putF(pos.Y)
		putF(vel.X)
		putF(vel.Y)
	}
	return h.Sum64()
}
