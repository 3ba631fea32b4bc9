package factory

import (
	"github.com/automoto/gravwalk/archetypes"
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the level's physics world with world gravity disabled.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	world := physics.NewWorld(physics.Settings{
		Iterations: cfg.Physics.Iterations,
		CellSize:   cfg.Physics.CellSize,
		Extent:     cfg.Physics.SensorExtent,
		Margin:     cfg.Physics.ProximityMargin,
		Profile:    cfg.Physics.Profile,
	})
	components.Space.SetValue(space, components.SpaceData{World: world})
	return space
}

func mustSpace(ecs *ecs.ECS) *physics.World {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: no physics space; call CreateSpace first")
	}
	return components.Space.Get(entry).World
}
