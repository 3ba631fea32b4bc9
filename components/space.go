package components

import (
	"github.com/automoto/gravwalk/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the level's physics world (singleton component).
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()
