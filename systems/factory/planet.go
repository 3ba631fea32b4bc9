package factory

import (
	"github.com/automoto/gravwalk/archetypes"
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/shared/leveldata"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlanet adds a static planet and, when the spawn asks for one, its
// atmosphere sensor.
func CreatePlanet(ecs *ecs.ECS, spawn leveldata.PlanetSpawn) *donburi.Entry {
	world := mustSpace(ecs)
	planet := archetypes.Planet.Spawn(ecs)

	radius := spawn.Radius
	if radius <= 0 {
		radius = cfg.Planet.Radius
	}
	center := cp.Vector{X: spawn.X, Y: spawn.Y}
	handle := world.AddPlanet(planet.Entity(), center, radius, cfg.Planet.Friction)

	components.Planet.SetValue(planet, components.PlanetData{
		Radius: radius,
		Home:   spawn.Home,
	})
	components.Body.SetValue(planet, components.BodyData{Handle: handle})

	if spawn.Atmosphere {
		CreateAtmosphere(ecs, planet, center, cfg.AtmosphereRadius(radius))
	}
	return planet
}

// CreateAtmosphere adds a non-colliding sensor concentric with planet.
func CreateAtmosphere(ecs *ecs.ECS, planet *donburi.Entry, center cp.Vector, radius float64) *donburi.Entry {
	world := mustSpace(ecs)
	atmosphere := archetypes.Atmosphere.Spawn(ecs)
	sensor := world.AddSensor(atmosphere.Entity(), center, radius)
	components.Atmosphere.SetValue(atmosphere, components.AtmosphereData{
		Planet: planet.Entity(),
		Sensor: sensor,
		Radius: radius,
	})
	return atmosphere
}
