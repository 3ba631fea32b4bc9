package systems

import (
	"fmt"

	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/physics"
	"github.com/automoto/gravwalk/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getWorld(e *ecs.ECS) (*physics.World, bool) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil, false
	}
	w := components.Space.Get(entry).World
	return w, w != nil
}

func getClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return &components.ClockData{Delta: 1 / float64(cfg.Physics.TickRate)}
	}
	return components.Clock.Get(entry)
}

func getVariant(e *ecs.ECS) cfg.Variant {
	entry, ok := components.Rules.First(e.World)
	if !ok {
		return cfg.VariantTwin
	}
	return components.Rules.Get(entry).Variant
}

// mustBody resolves the rigid body of an entity the pipeline itself created.
// A missing body means an entity outlived its physics state.
func mustBody(w *physics.World, entry *donburi.Entry) *cp.Body {
	h := components.Body.Get(entry).Handle
	body, ok := w.Body(h)
	if !ok {
		panic(fmt.Sprintf("systems: entity %v has no body for handle %d", entry.Entity(), h))
	}
	return body
}

// attraction is what pulls a body: a planet centre and the distance within
// which the pull applies.
type attraction struct {
	Planet *donburi.Entry
	Center cp.Vector
	Reach  float64
	Radius float64
}

// resolveAttraction finds the attractor of entry: its assigned atmosphere's
// planet, else the home planet. ok is false when nothing attracts it or a
// lookup fails.
func resolveAttraction(e *ecs.ECS, w *physics.World, entry *donburi.Entry) (attraction, bool) {
	if atmo := components.Attractable.Get(entry).Atmosphere; atmo != donburi.Null {
		return fromAtmosphere(e, w, atmo)
	}
	return homePlanet(e, w)
}

func fromAtmosphere(e *ecs.ECS, w *physics.World, atmo donburi.Entity) (attraction, bool) {
	if !e.World.Valid(atmo) {
		return attraction{}, false
	}
	atmoEntry := e.World.Entry(atmo)
	if !atmoEntry.HasComponent(components.Atmosphere) {
		return attraction{}, false
	}
	data := components.Atmosphere.Get(atmoEntry)
	if !e.World.Valid(data.Planet) {
		return attraction{}, false
	}
	planet := e.World.Entry(data.Planet)
	a, ok := planetAttraction(w, planet)
	if !ok {
		return attraction{}, false
	}
	a.Reach = data.Radius
	return a, true
}

func homePlanet(e *ecs.ECS, w *physics.World) (attraction, bool) {
	var found *donburi.Entry
	tags.Planet.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Planet.Get(entry).Home {
			found = entry
		}
	})
	if found == nil {
		return attraction{}, false
	}
	a, ok := planetAttraction(w, found)
	if !ok {
		return attraction{}, false
	}
	a.Reach = cfg.AtmosphereRadius(a.Radius)
	return a, true
}

func planetAttraction(w *physics.World, planet *donburi.Entry) (attraction, bool) {
	if !planet.HasComponent(components.Planet) || !planet.HasComponent(components.Body) {
		return attraction{}, false
	}
	body, ok := w.Body(components.Body.Get(planet).Handle)
	if !ok {
		return attraction{}, false
	}
	return attraction{
		Planet: planet,
		Center: body.Position(),
		Radius: components.Planet.Get(planet).Radius,
	}, true
}
