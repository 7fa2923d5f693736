package factory

import (
	"fmt"

	"github.com/automoto/hitgrid/archetypes"
	"github.com/automoto/hitgrid/collision"
	"github.com/automoto/hitgrid/components"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
	"github.com/automoto/hitgrid/shared/leveldata"
	"github.com/automoto/hitgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a static solid. Rects, polygons and circles all block
// movement with their bounding box on the sides listed in Surfaces.
func CreateWall(ecs *ecs.ECS, solid leveldata.Solid) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, err
	}

	surfaces := collision.DirAll
	if solid.Surfaces != "" {
		surfaces, err = collision.ParseDirections(solid.Surfaces)
		if err != nil {
			return nil, fmt.Errorf("wall at (%v, %v): %w", solid.X, solid.Y, err)
		}
	}

	var shape *collision.Hitbox
	switch solid.Shape {
	case leveldata.ShapePolygon:
		verts := make([]gamemath.Vector, len(solid.Points))
		for i, p := range solid.Points {
			verts[i] = vec(p.X, p.Y)
		}
		shape = space.NewPolygon(vec(solid.X, solid.Y), verts...)
	case leveldata.ShapeCircle:
		shape = space.NewCircle(vec(solid.X, solid.Y), fixed.FromFloat(solid.Radius))
	default:
		shape = space.NewRectangle(vec(solid.X, solid.Y), 0, 0, fixed.FromFloat(solid.W), fixed.FromFloat(solid.H))
	}
	shape.SetSurfaces(surfaces)

	body, _ := space.NewBody(shape, nil)
	body.SetSolidHitbox(shape)
	body.Tags = []string{tags.BodySolid}
	if surfaces != collision.DirAll {
		body.Tags = append(body.Tags, tags.BodyOneWay)
	}

	wall := archetypes.Wall.Spawn(ecs)
	body.Data = wall // Link for O(1) lookup
	components.Body.SetValue(wall, components.BodyData{Body: body})
	space.Add(body)

	return wall, nil
}
