package systems

import (
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the fixed tick. Must run first.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	if clock.Delta <= 0 {
		clock.Delta = 1 / float64(cfg.Physics.TickRate)
	}
	clock.Tick++
	clock.Elapsed += clock.Delta
}
