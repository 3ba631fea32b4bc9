package systems

import "github.com/yohamta/donburi/ecs"

// UpdatePhysics integrates the physics world by one tick.
func UpdatePhysics(e *ecs.ECS) {
	w, ok := getWorld(e)
	if !ok {
		return
	}
	w.Step(getClock(e).Delta)
}
