package components

import (
	"github.com/automoto/hitgrid/collision"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its body in the collision space. The body's
// Data field points back at the entry.
type BodyData struct {
	*collision.Body
}

var Body = donburi.NewComponentType[BodyData]()
