package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2    // world point at the screen centre
	Scale    float64      // world units per screen pixel
	Target   float64      // scale the zoom tween is heading to
	Zoom     *gween.Tween // nil when no zoom is in progress
}

var Camera = donburi.NewComponentType[CameraData]()
