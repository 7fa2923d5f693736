package systems

import "github.com/yohamta/donburi/ecs"

// AddSimulationSystems registers everything that advances the world, in
// order. Input must be registered before it. The sandbox scene and the
// headless replay share this list so both produce the same ticks.
func AddSimulationSystems(e *ecs.ECS) {
	e.AddSystem(UpdateSandbox)
	e.AddSystem(WithSimulationChecks(UpdatePlayer))
	e.AddSystem(WithSimulationChecks(UpdateMotion))
	e.AddSystem(WithSimulationChecks(UpdatePlatforms))
	e.AddSystem(WithSimulationChecks(UpdateCollision))
	e.AddSystem(WithSimulationChecks(UpdateDeadZones))
}
