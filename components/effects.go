package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks an active screen shake on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in screen pixels
	Duration  int     // frames the shake lasts
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
