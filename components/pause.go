package components

import "github.com/yohamta/donburi"

// PauseData freezes the simulation while set (singleton component).
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
