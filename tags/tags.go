package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Crate            = donburi.NewTag().SetName("Crate")
	Wall             = donburi.NewTag().SetName("Wall")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	DeadZone         = donburi.NewTag().SetName("DeadZone")
)

// Body tags for collision query filters
const (
	BodySolid    = "solid"
	BodyPlayer   = "player"
	BodyCrate    = "crate"
	BodyPlatform = "platform"
	BodyDeadZone = "deadzone"
	BodyOneWay   = "oneway"
)
