package systems

import (
	"github.com/automoto/gravwalk/shared/gamemath"
	"github.com/automoto/gravwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrientation turns each attracted player to face away from its
// planet. Only the rotation changes.
func UpdateOrientation(e *ecs.ECS) {
	w, ok := getWorld(e)
	if !ok {
		return
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		a, ok := resolveAttraction(e, w, entry)
		if !ok {
			return
		}
		body := mustBody(w, entry)
		body.SetAngle(gamemath.UprightAngle(a.Center, body.Position()))
	})
}
