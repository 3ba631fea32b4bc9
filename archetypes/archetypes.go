package archetypes

import (
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Planet = newArchetype(
		tags.Planet,
		components.Planet,
		components.Body,
	)
	Atmosphere = newArchetype(
		tags.Atmosphere,
		components.Atmosphere,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Attractable,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Body,
		components.Attractable,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
	Session = newArchetype(
		components.Input,
		components.Clock,
		components.Rules,
		components.Debug,
		components.Audio,
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
