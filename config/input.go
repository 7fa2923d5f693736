package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical sandbox action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPress
	ActionSlowMotion
	ActionCycleSpeed
	ActionPause
	ActionStep
	ActionReset
	ActionNextLevel
	ActionToggleCells
	ActionToggleHitboxes
	ActionToggleContacts
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeyUp},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionPress: {
				Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyShift},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionSlowMotion: {
				Keys: []ebiten.Key{ebiten.KeyQ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomLeft,
				},
			},
			ActionCycleSpeed: {
				Keys: []ebiten.Key{ebiten.KeyT},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionStep: {
				Keys: []ebiten.Key{ebiten.KeyPeriod},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionReset: {
				Keys: []ebiten.Key{ebiten.KeyR},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionNextLevel: {
				Keys: []ebiten.Key{ebiten.KeyN},
			},
			ActionToggleCells: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleHitboxes: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionToggleContacts: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
