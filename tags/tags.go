package tags

import "github.com/yohamta/donburi"

var (
	Planet     = donburi.NewTag().SetName("Planet")
	Atmosphere = donburi.NewTag().SetName("Atmosphere")
	Player     = donburi.NewTag().SetName("Player")
	Bullet     = donburi.NewTag().SetName("Bullet")
)
