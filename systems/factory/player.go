package factory

import (
	"math"

	"github.com/automoto/gravwalk/archetypes"
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// lastGroup hands out collision groups; a player and its bullets share one.
var lastGroup uint

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	world := mustSpace(ecs)
	player := archetypes.Player.Spawn(ecs)

	lastGroup++
	handle := world.AddBox(player.Entity(), physics.BoxDef{
		Kind:          physics.KindPlayer,
		Position:      cp.Vector{X: x, Y: y},
		Width:         cfg.Player.HalfWidth * 2,
		Height:        cfg.Player.HalfHeight * 2,
		Mass:          cfg.Player.Mass,
		Friction:      cfg.Player.Friction,
		Group:         lastGroup,
		FixedRotation: true,
	})
	world.Track(handle, math.Max(cfg.Player.HalfWidth, cfg.Player.HalfHeight))

	components.Body.SetValue(player, components.BodyData{Handle: handle})
	components.Player.SetValue(player, components.PlayerData{
		State:      cfg.LocomotionAirborne,
		HalfHeight: cfg.Player.HalfHeight,
		Group:      lastGroup,
	})
	components.Attractable.SetValue(player, components.AttractableData{Atmosphere: donburi.Null})

	return player
}
