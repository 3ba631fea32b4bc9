package systems

import (
	"image/color"

	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/physics"
	"github.com/automoto/gravwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	outlineWidth   = 2
	crosshairSize  = 8
	atmosphereRing = 1
)

// View maps y-up world coordinates to y-down screen pixels for a camera.
type View struct {
	Camera        cp.Vector
	Scale         float64 // world units per pixel
	Width, Height float64
}

func newView(e *ecs.ECS) (View, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return View{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	scale := camera.Scale
	if scale <= 0 {
		scale = cfg.Camera.DefaultScale
	}
	return View{
		Camera: cp.Vector{X: camera.Position.X, Y: camera.Position.Y},
		Scale:  scale,
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	}, true
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(p cp.Vector) (x, y float32) {
	return float32((p.X-v.Camera.X)/v.Scale + v.Width/2),
		float32(v.Height/2 - (p.Y-v.Camera.Y)/v.Scale)
}

// Length converts a world distance to pixels.
func (v View) Length(d float64) float32 {
	return float32(d / v.Scale)
}

// DrawWorld renders atmospheres, planets, bullets, the player and the cursor.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	view, ok := newView(e)
	if !ok {
		return
	}
	w, ok := getWorld(e)
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
		vector.FillCircle(screen, x, y, view.Length(atmo.Radius), cfg.Colors.Atmosphere, true)
		vector.StrokeCircle(screen, x, y, view.Length(atmo.Radius), atmosphereRing, cfg.Colors.Planet, true)
	})

	tags.Planet.Each(e.World, func(entry *donburi.Entry) {
		body, ok := w.Body(components.Body.Get(entry).Handle)
		if !ok {
			return
		}
		x, y := view.ToScreen(body.Position())
		vector.FillCircle(screen, x, y, view.Length(components.Planet.Get(entry).Radius), cfg.Colors.Planet, true)
	})

	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		drawBox(screen, view, w, entry, cfg.Bullet.HalfSize, cfg.Bullet.HalfSize, cfg.Colors.Bullet)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		drawBox(screen, view, w, entry, cfg.Player.HalfWidth, player.HalfHeight, cfg.Colors.Player)
	})

	if getVariant(e) == cfg.VariantTwin {
		if cursorEntry, ok := components.Cursor.First(e.World); ok {
			x, y := view.ToScreen(components.Cursor.Get(cursorEntry).World)
			vector.StrokeLine(screen, x-crosshairSize, y, x+crosshairSize, y, 1, cfg.Colors.Cursor, false)
			vector.StrokeLine(screen, x, y-crosshairSize, x, y+crosshairSize, 1, cfg.Colors.Cursor, false)
		}
	}
}

// drawBox outlines a rotated box body.
func drawBox(screen *ebiten.Image, view View, w *physics.World, entry *donburi.Entry, hw, hh float64, clr color.Color) {
	body, ok := w.Body(components.Body.Get(entry).Handle)
	if !ok {
		return
	}
	corners := [4]cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	for i := range corners {
		a := body.LocalToWorld(corners[i])
		b := body.LocalToWorld(corners[(i+1)%len(corners)])
		x0, y0 := view.ToScreen(a)
		x1, y1 := view.ToScreen(b)
		vector.StrokeLine(screen, x0, y0, x1, y1, outlineWidth, clr, true)
	}
}
