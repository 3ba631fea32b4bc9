package systems

import (
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/physics"
	"github.com/automoto/gravwalk/shared/gamemath"
	"github.com/automoto/gravwalk/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion runs the player movement state machine: jump, walk and
// idle on the ground, steering in the air.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdateLocomotion(e *ecs.ECS) {
	w, ok := getWorld(e)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	dt := getClock(e).Delta
	variant := getVariant(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		body := mustBody(w, entry)

		a, ok := resolveAttraction(e, w, entry)
		if !ok {
			if player.Grounded {
				player.State = cfg.LocomotionGroundedIdle
			} else {
				player.State = cfg.LocomotionAirborne
			}
			return
		}

		pos := body.Position()
		diff := a.Center.Sub(pos)
		clockwise := gamemath.Clockwise(diff)
		dx, dy := moveDirection(input)
		direction := cp.Vector{X: dx, Y: dy}
		hasDirection := !gamemath.IsZero(direction)
		factor := gamemath.DirectionFactor(direction, clockwise)
		jump := input.Action(cfg.ActionJump)

		switch {
		case player.Grounded && jump.Pressed:
			impulse := gamemath.JumpImpulse(diff, clockwise, factor, hasDirection, cfg.Player.JumpImpulse)
			body.ApplyImpulseAtWorldPoint(impulse, pos)
			player.State = cfg.LocomotionGroundedJumping
			if jump.JustPressed {
				PlaySFX(e, cfg.SoundJump)
			}
		case player.Grounded && hasDirection:
			walk(variant, body, a, player, clockwise, factor, dt)
			player.State = cfg.LocomotionGroundedWalking
		case player.Grounded:
			player.State = cfg.LocomotionGroundedIdle
		case hasDirection:
			impulse := gamemath.AirImpulse(diff, clockwise, factor, cfg.Player.AirTangent, cfg.Player.AirImpulse)
			body.ApplyImpulseAtWorldPoint(impulse, pos)
			player.State = cfg.LocomotionAirborne
		default:
			player.State = cfg.LocomotionAirborne
		}
	})
}

func walk(variant cfg.Variant, body *cp.Body, a attraction, player *components.PlayerData, clockwise cp.Vector, factor, dt float64) {
	if variant == cfg.VariantHome {
		impulse := gamemath.GroundCorrection(clockwise, factor, cfg.Player.GroundSpeed, body.Mass(), body.Velocity())
		body.ApplyImpulseAtWorldPoint(impulse, body.Position())
		return
	}
	// Angular walk: teleport along the surface, rotation untouched.
	radius := a.Radius + player.HalfHeight
	body.SetPosition(gamemath.OrbitStep(a.Center, body.Position(), radius, cfg.Player.WalkSpeed, factor, dt))
}

// playerBody is the body of the first player, for renderers and the camera.
func playerBody(e *ecs.ECS, w *physics.World) (*donburi.Entry, *cp.Body, bool) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return nil, nil, false
	}
	body, ok := w.Body(components.Body.Get(entry).Handle)
	if !ok {
		return nil, nil, false
	}
	return entry, body, true
}
