package systems

import (
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/physics"
	"github.com/automoto/gravwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	impactShakeIntensity = 4.0
	impactShakeFrames    = 10
)

// NextAttraction returns the atmosphere a body is attracted to after a
// proximity transition with atmosphere. Entering assigns, leaving clears only
// the atmosphere that is currently assigned, anything else keeps current.
func NextAttraction(current, atmosphere donburi.Entity, status physics.ProximityStatus) donburi.Entity {
	switch status {
	case physics.Intersecting:
		return atmosphere
	case physics.Disjoint:
		if current == atmosphere {
			return donburi.Null
		}
	}
	return current
}

// UpdatePhysicsEvents drains both event queues of the physics world.
// Must run AFTER UpdatePhysics.
func UpdatePhysicsEvents(e *ecs.ECS) {
	w, ok := getWorld(e)
	if !ok {
		return
	}
	for {
		ev, ok := w.PopProximity()
		if !ok {
			break
		}
		resolveProximity(e, w, ev)
	}
	for {
		ev, ok := w.PopContact()
		if !ok {
			break
		}
		resolveContact(e, w, ev)
	}
}

func lookup(e *ecs.ECS, w *physics.World, h physics.Handle) (*donburi.Entry, bool) {
	entity, ok := w.Entity(h)
	if !ok || !e.World.Valid(entity) {
		return nil, false
	}
	return e.World.Entry(entity), true
}

func resolveProximity(e *ecs.ECS, w *physics.World, ev physics.ProximityEvent) {
	atmo, ok := lookup(e, w, ev.Sensor)
	if !ok || !atmo.HasComponent(components.Atmosphere) {
		return
	}
	body, ok := lookup(e, w, ev.Body)
	if !ok || !body.HasComponent(components.Attractable) {
		return
	}
	attractable := components.Attractable.Get(body)
	attractable.Atmosphere = NextAttraction(attractable.Atmosphere, atmo.Entity(), ev.Status)
}

func resolveContact(e *ecs.ECS, w *physics.World, ev physics.ContactEvent) {
	var live []*donburi.Entry
	for _, h := range [2]physics.Handle{ev.A, ev.B} {
		if entry, ok := lookup(e, w, h); ok {
			live = append(live, entry)
		}
	}

	touchesPlanet := false
	for _, entry := range live {
		if entry.HasComponent(tags.Planet) {
			touchesPlanet = true
		}
	}

	for _, entry := range live {
		switch {
		case entry.HasComponent(tags.Bullet):
			destroyBullet(e, w, entry)
		case entry.HasComponent(tags.Player) && touchesPlanet:
			components.Player.Get(entry).Grounded = ev.Started
		}
	}
}

// destroyBullet removes the bullet's body and then the entity. Contacts the
// removal ends resolve to a dead handle and are skipped.
func destroyBullet(e *ecs.ECS, w *physics.World, entry *donburi.Entry) {
	w.Remove(components.Body.Get(entry).Handle)
	e.World.Remove(entry.Entity())
	TriggerScreenShake(e, impactShakeIntensity, impactShakeFrames)
	PlaySFX(e, cfg.SoundImpact)
}
