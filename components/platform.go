package components

import (
	"github.com/automoto/hitgrid/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData moves a kinematic body along Travel and back. Sequence
// yields the fraction of Travel covered.
type PlatformData struct {
	Name     string
	Origin   gamemath.Vector
	Travel   gamemath.Vector
	Sequence *gween.Sequence
}

var Platform = donburi.NewComponentType[PlatformData]()
