package components

import (
	"github.com/automoto/gravwalk/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body in the physics world.
type BodyData struct {
	Handle physics.Handle
}

var Body = donburi.NewComponentType[BodyData]()
