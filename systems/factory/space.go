package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/hitgrid/archetypes"
	"github.com/automoto/hitgrid/collision"
	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoSpace is returned when a body is created before the space.
var ErrNoSpace = errors.New("no collision space in world")

func CreateSpace(ecs *ecs.ECS) (*donburi.Entry, error) {
	spaceData, err := collision.NewSpace(fixed.FromFloat(cfg.Collision.CellWidth), fixed.FromFloat(cfg.Collision.CellHeight))
	if err != nil {
		return nil, fmt.Errorf("create space: %w", err)
	}
	spaceData.SetMaxResolveDepth(cfg.Collision.MaxResolveDepth)

	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space, nil
}

// spaceOf returns the space every body is added to.
func spaceOf(ecs *ecs.ECS) (*collision.Space, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, ErrNoSpace
	}
	return components.Space.Get(spaceEntry).Space, nil
}

func vec(x, y float64) gamemath.Vector {
	return gamemath.Vector{X: fixed.FromFloat(x), Y: fixed.FromFloat(y)}
}

// newBoxBody creates a body located by a w x h rectangle with its top-left
// corner at (x, y).
func newBoxBody(space *collision.Space, x, y, w, h float64, c collision.Collider) *collision.Body {
	box := space.NewRectangle(vec(x, y), 0, 0, fixed.FromFloat(w), fixed.FromFloat(h))
	body, _ := space.NewBody(box, c)
	return body
}
