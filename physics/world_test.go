package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

var testTag = donburi.NewTag().SetName("test")

func testSettings() Settings {
	return Settings{Iterations: 10, CellSize: 64, Extent: 4096, Margin: 16, Profile: true}
}

func newEntities(n int) []donburi.Entity {
	world := donburi.NewWorld()
	out := make([]donburi.Entity, n)
	for i := range out {
		out[i] = world.Create(testTag)
	}
	return out
}

func TestContactBeginsWhenBoxLandsOnPlanet(t *testing.T) {
	w := NewWorld(testSettings())
	es := newEntities(2)
	planet := w.AddPlanet(es[0], cp.Vector{}, 160, 0.7)
	player := w.AddBox(es[1], BoxDef{
		Kind:          KindPlayer,
		Position:      cp.Vector{X: 0, Y: 185},
		Velocity:      cp.Vector{X: 0, Y: -120},
		Width:         16,
		Height:        46,
		Mass:          50,
		FixedRotation: true,
	})

	var started bool
	for i := 0; i < 30 && !started; i++ {
		w.Step(1.0 / 60)
		for {
			ev, ok := w.PopContact()
			if !ok {
				break
			}
			pair := (ev.A == planet && ev.B == player) || (ev.A == player && ev.B == planet)
			if pair && ev.Started {
				started = true
			}
		}
	}
	if !started {
		t.Fatal("no contact-begin event between player and planet")
	}
	if c, p := w.Pending(); c != 0 || p != 0 {
		t.Errorf("Pending() = (%d, %d) after draining, want (0, 0)", c, p)
	}
}

func TestSameGroupNeverCollides(t *testing.T) {
	w := NewWorld(testSettings())
	es := newEntities(2)
	w.AddBox(es[0], BoxDef{Kind: KindPlayer, Width: 16, Height: 46, Mass: 50, Group: 1, FixedRotation: true})
	w.AddBox(es[1], BoxDef{Kind: KindBullet, Width: 10, Height: 10, Mass: 100, Group: 1})

	for i := 0; i < 5; i++ {
		w.Step(1.0 / 60)
	}
	if ev, ok := w.PopContact(); ok {
		t.Fatalf("unexpected contact %+v between bodies of one group", ev)
	}
}

func TestProximityTransitions(t *testing.T) {
	w := NewWorld(testSettings())
	es := newEntities(2)
	atmo := w.AddSensor(es[0], cp.Vector{}, 320)
	body := w.AddBox(es[1], BoxDef{Kind: KindBullet, Position: cp.Vector{X: 0, Y: 400}, Width: 10, Height: 10, Mass: 1})
	w.Track(body, 10)

	b, ok := w.Body(body)
	if !ok {
		t.Fatal("Body() did not resolve a fresh handle")
	}

	steps := []struct {
		y      float64
		want   ProximityStatus
		wantEv bool
	}{
		{400, Disjoint, false},
		{340, WithinMargin, true},
		{300, Intersecting, true},
		{0, Intersecting, false},
		{1000, Disjoint, true},
	}
	for _, s := range steps {
		b.SetPosition(cp.Vector{X: 0, Y: s.y})
		w.Step(1.0 / 60)

		ev, got := w.PopProximity()
		if got != s.wantEv {
			t.Fatalf("y=%v: event present = %v, want %v", s.y, got, s.wantEv)
		}
		if !got {
			continue
		}
		if ev.Body != body || ev.Sensor != atmo || ev.Status != s.want {
			t.Errorf("y=%v: event = %+v, want status %v for body %d sensor %d", s.y, ev, s.want, body, atmo)
		}
		if _, more := w.PopProximity(); more {
			t.Errorf("y=%v: more than one proximity event", s.y)
		}
	}
}

func TestProximityAcrossNegativeCoordinates(t *testing.T) {
	w := NewWorld(testSettings())
	es := newEntities(2)
	w.AddSensor(es[0], cp.Vector{X: -500, Y: -500}, 100)
	body := w.AddBox(es[1], BoxDef{Kind: KindBullet, Position: cp.Vector{X: -520, Y: -480}, Width: 10, Height: 10, Mass: 1})
	w.Track(body, 5)

	w.Step(1.0 / 60)
	ev, ok := w.PopProximity()
	if !ok || ev.Status != Intersecting {
		t.Fatalf("PopProximity() = (%+v, %v), want an intersecting event", ev, ok)
	}
}

func TestHandleLookupAndRemove(t *testing.T) {
	w := NewWorld(testSettings())
	es := newEntities(3)
	planet := w.AddPlanet(es[0], cp.Vector{}, 160, 0.7)
	atmo := w.AddSensor(es[1], cp.Vector{}, 320)
	box := w.AddBox(es[2], BoxDef{Kind: KindBullet, Position: cp.Vector{Y: 250}, Width: 10, Height: 10, Mass: 1})

	for h, want := range map[Handle]donburi.Entity{planet: es[0], atmo: es[1], box: es[2]} {
		got, ok := w.Entity(h)
		if !ok || got != want {
			t.Errorf("Entity(%d) = (%v, %v), want (%v, true)", h, got, ok, want)
		}
	}
	if planet == NoHandle || atmo == planet || box == atmo {
		t.Errorf("handles not unique: %d %d %d", planet, atmo, box)
	}

	w.Remove(box)
	if _, ok := w.Body(box); ok {
		t.Error("Body() resolved a removed handle")
	}
	if _, ok := w.Entity(box); ok {
		t.Error("Entity() resolved a removed handle")
	}
	w.Remove(box)

	w.Remove(atmo)
	if _, ok := w.Entity(atmo); ok {
		t.Error("Entity() resolved a removed sensor")
	}

	w.Step(1.0 / 60)
	if w.Stats.Bodies != 1 || w.Stats.Sensors != 0 || w.Stats.Steps != 1 {
		t.Errorf("Stats = %+v, want 1 body, 0 sensors, 1 step", w.Stats)
	}
}
