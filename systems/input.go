package systems

import (
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input component.
// Must run BEFORE UpdateLocomotion in the system order.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
	mergeAnalogStick(input)

	cx, cy := ebiten.CursorPosition()
	// y-up screen pixels
	px, py := float64(cx), float64(cfg.C.Height-cy)
	input.PointerMoved = px != input.PointerX || py != input.PointerY
	input.PointerX, input.PointerY = px, py

	_, input.Wheel = ebiten.Wheel()
}

// mergeAnalogStick folds the left stick of any standard gamepad into the
// movement actions.
func mergeAnalogStick(input *components.InputData) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMoveUp] = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMoveDown] = true
		}
	}
}

// moveDirection sums the unit vectors of the held movement actions (y-up).
func moveDirection(input *components.InputData) (x, y float64) {
	for _, id := range cfg.MoveActions {
		if !input.Current[id] {
			continue
		}
		d := cfg.Input.MoveDirections[id]
		x += d[0]
		y += d[1]
	}
	return x, y
}
