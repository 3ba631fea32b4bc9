package components

import (
	cfg "github.com/automoto/gravwalk/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Grounded   bool // in contact with a planet surface
	State      cfg.LocomotionState
	HalfHeight float64
	Group      uint // collision group shared with the player's bullets
}

var Player = donburi.NewComponentType[PlayerData]()
