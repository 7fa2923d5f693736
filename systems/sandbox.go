package systems

import (
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSandbox handles the simulation controls and decides whether the
// simulation systems run this frame.
func UpdateSandbox(ecs *ecs.ECS) {
	sandbox := GetOrCreateSandbox(ecs)
	input := GetOrCreateInput(ecs)

	changed := false

	if GetAction(input, cfg.ActionPause).JustPressed {
		sandbox.Paused = !sandbox.Paused
	}
	if GetAction(input, cfg.ActionStep).JustPressed && sandbox.Paused {
		sandbox.StepOnce = true
	}
	sandbox.SlowMotion = GetAction(input, cfg.ActionSlowMotion).Pressed

	if GetAction(input, cfg.ActionCycleSpeed).JustPressed && len(cfg.Settings.TimeFactors) > 0 {
		sandbox.SpeedIndex = (sandbox.SpeedIndex + 1) % len(cfg.Settings.TimeFactors)
		changed = true
	}

	if GetAction(input, cfg.ActionToggleCells).JustPressed {
		sandbox.ShowCells = !sandbox.ShowCells
		changed = true
	}
	if GetAction(input, cfg.ActionToggleHitboxes).JustPressed {
		sandbox.ShowHitboxes = !sandbox.ShowHitboxes
		changed = true
	}
	if GetAction(input, cfg.ActionToggleContacts).JustPressed {
		sandbox.ShowContacts = !sandbox.ShowContacts
		changed = true
	}

	if GetAction(input, cfg.ActionReset).JustPressed {
		sandbox.ResetRequested = true
	}
	if GetAction(input, cfg.ActionNextLevel).JustPressed {
		sandbox.ResetRequested = true
		sandbox.NextLevel = true
	}

	sandbox.Running = !sandbox.Paused || sandbox.StepOnce
	sandbox.StepOnce = false

	if changed {
		levelIndex := 0
		if levelEntry, ok := components.Level.First(ecs.World); ok {
			levelIndex = components.Level.Get(levelEntry).LevelIndex
		}
		SaveCurrentSettings(sandbox, levelIndex)
	}
}

// GetOrCreateSandbox returns the singleton Sandbox component, creating it
// from the debug config if needed
func GetOrCreateSandbox(ecs *ecs.ECS) *components.SandboxData {
	entry, ok := components.Sandbox.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Sandbox))
		components.Sandbox.SetValue(entry, components.SandboxData{
			Paused:       cfg.Debug.Paused,
			SpeedIndex:   cfg.Settings.DefaultSpeedIndex,
			ShowCells:    cfg.Debug.ShowCells,
			ShowHitboxes: cfg.Debug.ShowHitboxes,
			ShowContacts: cfg.Debug.ShowContacts,
		})
	}
	return components.Sandbox.Get(entry)
}

// WithSimulationChecks wraps a system so it only runs on frames where the
// sandbox lets the simulation advance.
func WithSimulationChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreateSandbox(e).Running {
			return
		}
		system(e)
	}
}

// TimeFactor returns the factor every velocity is scaled by this tick.
func TimeFactor(ecs *ecs.ECS) fixed.F {
	return timeFactorOf(GetOrCreateSandbox(ecs))
}

func timeFactorOf(sandbox *components.SandboxData) fixed.F {
	f := cfg.C.TimeFactor
	if sandbox.SlowMotion {
		f = cfg.C.SlowMotionFactor
	}
	if sandbox.SpeedIndex >= 0 && sandbox.SpeedIndex < len(cfg.Settings.TimeFactors) {
		f *= cfg.Settings.TimeFactors[sandbox.SpeedIndex]
	}
	return fixed.FromFloat(f)
}
