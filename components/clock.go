package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock (singleton component).
type ClockData struct {
	Tick    int
	Delta   float64 // seconds per tick
	Elapsed float64
}

var Clock = donburi.NewComponentType[ClockData]()
