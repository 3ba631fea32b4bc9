package factory

import (
	"github.com/automoto/gravwalk/archetypes"
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the per-scene singletons: input, clock, rules,
// debug overlay and the sound queue.
func CreateSession(ecs *ecs.ECS, variant cfg.Variant) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Clock.SetValue(session, components.ClockData{
		Delta: 1 / float64(cfg.Physics.TickRate),
	})
	components.Rules.SetValue(session, components.RulesData{Variant: variant})
	components.Debug.SetValue(session, components.DebugData{Visible: cfg.Debug.ShowOverlay})
	components.Audio.SetValue(session, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return session
}
