package systems

import (
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateSandbox and UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	var current [cfg.ActionCount]bool

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right := getAnalogStickState(gamepadIDs)
	if left {
		current[cfg.ActionMoveLeft] = true
	}
	if right {
		current[cfg.ActionMoveRight] = true
	}

	SetInput(input, current)
}

// SetInput swaps the frame buffers and stores current as this frame's state.
// Scripted runs call it instead of polling devices.
func SetInput(input *components.InputData, current [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = current
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}

	return
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
