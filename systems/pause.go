package systems

import (
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause state.
// This system should run AFTER UpdateInput but BEFORE the simulation systems.
func UpdatePause(e *ecs.ECS) {
	pauseEntry, ok := components.Pause.First(e.World)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	if components.Input.Get(inputEntry).Action(cfg.ActionPause).JustPressed {
		pause := components.Pause.Get(pauseEntry)
		pause.IsPaused = !pause.IsPaused
	}
}

// IsPaused reports whether the simulation is frozen.
func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.Pause.First(e.World)
	return ok && components.Pause.Get(entry).IsPaused
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(e) {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	face := fonts.Title.Face()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(width)/2, float64(height)/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, "PAUSED", face, op)

	hint := &text.DrawOptions{}
	hint.GeoM.Translate(float64(width)/2, float64(height)/2+40)
	hint.PrimaryAlign = text.AlignCenter
	hint.ColorScale.ScaleWithColor(cfg.LightBlue)
	text.Draw(screen, "P: resume   Esc: menu", fonts.HUDSmall.Face(), hint)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}
