package components

import "github.com/yohamta/donburi"

// SandboxData stores the simulation controls of the sandbox
type SandboxData struct {
	Paused bool
	// StepOnce runs a single tick while paused.
	StepOnce   bool
	SlowMotion bool
	SpeedIndex int
	Ticks      int
	// Running is decided once per frame by UpdateSandbox.
	Running bool

	ShowCells    bool
	ShowHitboxes bool
	ShowContacts bool

	// ResetRequested rebuilds the current level at the end of the frame.
	ResetRequested bool
	// NextLevel is set together with ResetRequested to advance a level.
	NextLevel bool
}

var Sandbox = donburi.NewComponentType[SandboxData]()
