package factory

import (
	"github.com/automoto/gravwalk/archetypes"
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a projectile owned by owner. It shares the owner's
// collision group so it never hits its shooter.
func CreateBullet(ecs *ecs.ECS, owner *donburi.Entry, pos, vel cp.Vector) *donburi.Entry {
	world := mustSpace(ecs)
	bullet := archetypes.Bullet.Spawn(ecs)

	var group uint
	if owner.HasComponent(components.Player) {
		group = components.Player.Get(owner).Group
	}

	size := cfg.Bullet.HalfSize * 2
	handle := world.AddBox(bullet.Entity(), physics.BoxDef{
		Kind:     physics.KindBullet,
		Position: pos,
		Velocity: vel,
		Width:    size,
		Height:   size,
		Mass:     cfg.Bullet.Mass,
		Group:    group,
	})
	world.Track(handle, cfg.Bullet.HalfSize)

	components.Body.SetValue(bullet, components.BodyData{Handle: handle})
	components.Bullet.SetValue(bullet, components.BulletData{Owner: owner.Entity()})
	components.Attractable.SetValue(bullet, components.AttractableData{Atmosphere: donburi.Null})

	return bullet
}
