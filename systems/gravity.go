package systems

import (
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity pulls every attractable body toward its attractor with a
// constant force. Bodies out of reach or without an attractor are left alone.
func UpdateGravity(e *ecs.ECS) {
	w, ok := getWorld(e)
	if !ok {
		return
	}
	components.Attractable.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Body) {
			return
		}
		a, ok := resolveAttraction(e, w, entry)
		if !ok {
			return
		}
		body := mustBody(w, entry)
		pos := body.Position()
		force, ok := gamemath.GravityForce(a.Center, pos, a.Reach, cfg.Gravity.Force)
		if !ok {
			return
		}
		body.ApplyForceAtWorldPoint(force, pos)
	})
}
