package components

import (
	"github.com/automoto/hitgrid/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Facing is 1 when facing right and -1 when facing left.
	Facing   int
	Spawn    gamemath.Vector
	Respawns int
}

var Player = donburi.NewComponentType[PlayerData]()
