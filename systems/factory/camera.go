package factory

import (
	"github.com/automoto/hitgrid/archetypes"
	"github.com/automoto/hitgrid/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera on (x, y) so the first frame does not
// sweep across the level.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(x, y),
	})
}
