package factory

import (
	"log"

	"github.com/automoto/gravwalk/archetypes"
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds a whole level: the physics space, session singletons,
// planets with their atmospheres, the player, the camera and the cursor.
// It returns the player.
func CreateLevel(ecs *ecs.ECS, layout *leveldata.Layout, variant cfg.Variant) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Layout: layout})

	CreateSpace(ecs)
	CreateSession(ecs, variant)

	for _, p := range layout.Planets {
		CreatePlanet(ecs, p)
	}

	x, y := cfg.Player.SpawnX, cfg.Player.SpawnY
	if layout.PlayerSpawn != nil {
		x, y = layout.PlayerSpawn.X, layout.PlayerSpawn.Y
	} else {
		log.Printf("Warning: level %s has no player spawn, using (%v, %v)", layout.Name, x, y)
	}
	player := CreatePlayer(ecs, x, y)

	CreateCamera(ecs, x, y)
	CreateCursor(ecs)

	return player
}
