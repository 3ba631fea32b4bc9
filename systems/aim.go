package systems

import (
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/shared/gamemath"
	"github.com/automoto/gravwalk/systems/factory"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAim moves the cursor to the pointer's world position when the
// pointer moved this tick. Only the twin rules aim.
func UpdateAim(e *ecs.ECS) {
	if getVariant(e) != cfg.VariantTwin {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	if !input.PointerMoved {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cursorEntry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	cursor := components.Cursor.Get(cursorEntry)

	cursor.World = gamemath.AimPoint(
		cp.Vector{X: camera.Position.X, Y: camera.Position.Y},
		cp.Vector{X: input.PointerX, Y: input.PointerY},
		cp.Vector{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2},
		camera.Scale,
	)
}

// UpdateShoot fires a bullet from the player when shoot is pressed.
func UpdateShoot(e *ecs.ECS) {
	w, ok := getWorld(e)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	if !components.Input.Get(inputEntry).Action(cfg.ActionShoot).JustPressed {
		return
	}
	playerEntry, body, ok := playerBody(e, w)
	if !ok {
		return
	}
	origin := body.Position()

	var pos, vel cp.Vector
	switch getVariant(e) {
	case cfg.VariantHome:
		pos = origin
		vel = cp.Vector{X: cfg.Bullet.Speed, Y: 0}
	default:
		cursorEntry, ok := components.Cursor.First(e.World)
		if !ok {
			return
		}
		target := components.Cursor.Get(cursorEntry).World
		pos, vel, ok = gamemath.Launch(origin, target, cfg.Bullet.SpawnOffset, cfg.Bullet.Speed)
		if !ok {
			return
		}
	}

	factory.CreateBullet(e, playerEntry, pos, vel)
	PlaySFX(e, cfg.SoundShoot)
}
