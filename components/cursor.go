package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// CursorData is the aim target in world coordinates (singleton component).
type CursorData struct {
	World cp.Vector
}

var Cursor = donburi.NewComponentType[CursorData]()
