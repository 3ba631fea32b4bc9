package components

import (
	"github.com/automoto/gravwalk/physics"
	"github.com/yohamta/donburi"
)

type PlanetData struct {
	Radius float64
	Home   bool // attracts bodies that have no atmosphere assigned
}

var Planet = donburi.NewComponentType[PlanetData]()

// AtmosphereData is the sensor region around a planet that assigns attraction.
type AtmosphereData struct {
	Planet donburi.Entity
	Sensor physics.Handle
	Radius float64
}

var Atmosphere = donburi.NewComponentType[AtmosphereData]()

// AttractableData marks a body that gravity acts on. Atmosphere is
// donburi.Null while no atmosphere is assigned.
type AttractableData struct {
	Atmosphere donburi.Entity
}

var Attractable = donburi.NewComponentType[AttractableData]()
