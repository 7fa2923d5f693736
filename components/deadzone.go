package components

import "github.com/yohamta/donburi"

type DeadZoneData struct {
	Hits int
}

var DeadZone = donburi.NewComponentType[DeadZoneData]()
