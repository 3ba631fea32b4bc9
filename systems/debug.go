package systems

import (
	"fmt"

	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the profiling overlay.
func UpdateDebug(e *ecs.ECS) {
	debugEntry, ok := components.Debug.First(e.World)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	if components.Input.Get(inputEntry).Action(cfg.ActionToggleDebug).JustPressed {
		debug := components.Debug.Get(debugEntry)
		debug.Visible = !debug.Visible
	}
}

// DrawDebug renders physics counters and atmosphere reach when the overlay is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debugEntry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(debugEntry).Visible {
		return
	}
	w, ok := getWorld(e)
	if !ok {
		return
	}
	view, ok := newView(e)
	if !ok {
		return
	}

	components.Atmosphere.Each(e.World, func(entry *donburi.Entry) {
		atmo := components.Atmosphere.Get(entry)
		if !e.World.Valid(atmo.Planet) {
			return
		}
		body, ok := w.Body(components.Body.Get(e.World.Entry(atmo.Planet)).Handle)
		if !ok {
			return
		}
		x, y := view.ToScreen(body.Position())
		r := view.Length(atmo.Radius + cfg.Physics.ProximityMargin)
		vector.StrokeCircle(screen, x, y, r, 1, cfg.Yellow, false)
	})

	clock := getClock(e)
	stats := w.Stats
	contacts, proximities := w.Pending()
	lines := []string{
		fmt.Sprintf("tps %.1f  fps %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("tick %d  t %.2fs", clock.Tick, clock.Elapsed),
		fmt.Sprintf("step %d  %v", stats.Steps, stats.StepTime),
		fmt.Sprintf("bodies %d  sensors %d", stats.Bodies, stats.Sensors),
		fmt.Sprintf("contacts %d  proximities %d", stats.Contacts, stats.Proximities),
		fmt.Sprintf("pending %d/%d", contacts, proximities),
	}
	x := float64(cfg.C.Width) - 260
	drawLines(screen, fonts.HUDSmall.Face(), lines, x, hudMargin)
}
