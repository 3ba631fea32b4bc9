package factory

import (
	"github.com/automoto/gravwalk/archetypes"
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
		Scale:    cfg.Camera.DefaultScale,
		Target:   cfg.Camera.DefaultScale,
	})
	return camera
}

func CreateCursor(ecs *ecs.ECS) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(ecs)
	components.Cursor.Set(cursor, &components.CursorData{})
	return cursor
}
