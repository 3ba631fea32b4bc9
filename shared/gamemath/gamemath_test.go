package gamemath

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const eps = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecApprox(a, b cp.Vector, tol float64) bool {
	return approxEqual(a.X, b.X, tol) && approxEqual(a.Y, b.Y, tol)
}

func TestGravityForce(t *testing.T) {
	tests := []struct {
		name   string
		center cp.Vector
		pos    cp.Vector
		reach  float64
		want   cp.Vector
		wantOK bool
	}{
		{
			name:   "straight down from above",
			center: cp.Vector{},
			pos:    cp.Vector{X: 0, Y: 250},
			reach:  320,
			want:   cp.Vector{X: 0, Y: -200000},
			wantOK: true,
		},
		{
			name:   "diagonal keeps magnitude",
			center: cp.Vector{X: 750, Y: 500},
			pos:    cp.Vector{X: 750 - 30, Y: 500 - 40},
			reach:  320,
			want:   cp.Vector{X: 120000, Y: 160000},
			wantOK: true,
		},
		{
			name:   "exactly at reach",
			center: cp.Vector{},
			pos:    cp.Vector{X: 320, Y: 0},
			reach:  320,
			want:   cp.Vector{X: -200000, Y: 0},
			wantOK: true,
		},
		{
			name:   "out of range",
			center: cp.Vector{},
			pos:    cp.Vector{X: 0, Y: 320.5},
			reach:  320,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GravityForce(tt.center, tt.pos, tt.reach, 200000)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !vecApprox(got, tt.want, 1e-6) {
				t.Errorf("force = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGravityForceIsDistanceIndependent(t *testing.T) {
	for _, d := range []float64{10, 100, 200, 319} {
		f, ok := GravityForce(cp.Vector{}, cp.Vector{X: d, Y: 0}, 320, 200000)
		if !ok {
			t.Fatalf("distance %v: out of range", d)
		}
		if !approxEqual(f.Length(), 200000, 1e-6) {
			t.Errorf("distance %v: |force| = %v, want 200000", d, f.Length())
		}
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		a, b cp.Vector
		want float64
	}{
		{cp.Vector{X: 1}, cp.Vector{X: 1}, 0},
		{cp.Vector{X: 1}, cp.Vector{Y: 1}, math.Pi / 2},
		{cp.Vector{Y: -3}, cp.Vector{Y: 1}, math.Pi},
		{cp.Vector{}, cp.Vector{Y: 1}, 0},
	}
	for _, tt := range tests {
		if got := AngleBetween(tt.a, tt.b); !approxEqual(got, tt.want, eps) {
			t.Errorf("AngleBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestUprightAngle(t *testing.T) {
	tests := []struct {
		name string
		pos  cp.Vector
		want float64
	}{
		{"on top", cp.Vector{X: 0, Y: 183}, -math.Pi},
		{"right side", cp.Vector{X: 183, Y: 0}, math.Pi / 2},
		{"left side", cp.Vector{X: -183, Y: 0}, -math.Pi / 2},
		{"underneath", cp.Vector{X: 0, Y: -183}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UprightAngle(cp.Vector{}, tt.pos); !approxEqual(got, tt.want, eps) {
				t.Errorf("UprightAngle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClockwiseAndFactor(t *testing.T) {
	// Standing on top of a planet at the origin.
	diff := cp.Vector{X: 0, Y: -183}
	cw := Clockwise(diff)
	if !vecApprox(cw, cp.Vector{X: -1, Y: 0}, eps) {
		t.Fatalf("Clockwise = %v, want (-1, 0)", cw)
	}

	tests := []struct {
		name      string
		direction cp.Vector
		want      float64
	}{
		{"left is clockwise", cp.Vector{X: -1}, 1},
		{"right is counter-clockwise", cp.Vector{X: 1}, -1},
		{"up-left still clockwise", cp.Vector{X: -1, Y: 1}, 1},
		{"straight up is perpendicular", cp.Vector{Y: 1}, -1},
		{"no direction", cp.Vector{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectionFactor(tt.direction, cw); got != tt.want {
				t.Errorf("DirectionFactor(%v) = %v, want %v", tt.direction, got, tt.want)
			}
		})
	}
}

func TestJumpImpulse(t *testing.T) {
	diff := cp.Vector{X: 0, Y: -183}
	cw := Clockwise(diff)

	got := JumpImpulse(diff, cw, 1, false, 30000)
	want := Normalize(diff).Mult(-30000)
	if !vecApprox(got, want, 1e-6) {
		t.Errorf("no direction: impulse = %v, want %v", got, want)
	}

	got = JumpImpulse(diff, cw, 1, true, 30000)
	s := 30000 / math.Sqrt2
	if !vecApprox(got, cp.Vector{X: s, Y: s}, 1e-6) {
		t.Errorf("with direction: impulse = %v, want (%v, %v)", got, s, s)
	}
}

func TestAirImpulsePushesAway(t *testing.T) {
	diff := cp.Vector{X: 0, Y: -183}
	got := AirImpulse(diff, Clockwise(diff), -1, 2, 1000)
	want := cp.Vector{X: 2000, Y: 1000}
	if !vecApprox(got, want, 1e-6) {
		t.Errorf("AirImpulse = %v, want %v", got, want)
	}
}

func TestOrbitStep(t *testing.T) {
	pos := cp.Vector{X: 0, Y: 183}
	got := OrbitStep(cp.Vector{}, pos, 183, 1.2, 1, 1.0/60)

	if !approxEqual(got.Length(), 183, 1e-9) {
		t.Errorf("radius = %v, want 183", got.Length())
	}
	angle := math.Atan2(got.Y, got.X)
	if !approxEqual(angle, math.Pi/2+1.2/60, 1e-12) {
		t.Errorf("angle = %v, want %v", angle, math.Pi/2+1.2/60)
	}
}

func TestOrbitStepAroundOffsetPlanet(t *testing.T) {
	center := cp.Vector{X: 750, Y: 500}
	pos := center.Add(cp.Vector{X: 200, Y: 0})
	got := OrbitStep(center, pos, 183, 1.2, -1, 0.5)

	rel := got.Sub(center)
	if !approxEqual(rel.Length(), 183, 1e-9) {
		t.Errorf("radius = %v, want 183", rel.Length())
	}
	if !approxEqual(math.Atan2(rel.Y, rel.X), -0.6, 1e-12) {
		t.Errorf("angle = %v, want -0.6", math.Atan2(rel.Y, rel.X))
	}
}

func TestGroundCorrection(t *testing.T) {
	cw := cp.Vector{X: -1, Y: 0}
	got := GroundCorrection(cw, 1, 180, 50, cp.Vector{X: -100, Y: 20})
	want := cp.Vector{X: -4000, Y: -1000}
	if !vecApprox(got, want, 1e-9) {
		t.Errorf("GroundCorrection = %v, want %v", got, want)
	}
}

func TestAimPoint(t *testing.T) {
	got := AimPoint(cp.Vector{X: 100, Y: 50}, cp.Vector{X: 900, Y: 450}, cp.Vector{X: 800, Y: 450}, 2)
	if !vecApprox(got, cp.Vector{X: 300, Y: 50}, eps) {
		t.Errorf("AimPoint = %v, want (300, 50)", got)
	}
}

func TestLaunch(t *testing.T) {
	origin := cp.Vector{X: 0, Y: 183}
	pos, vel, ok := Launch(origin, cp.Vector{X: 0, Y: 400}, 30, 700)
	if !ok {
		t.Fatal("Launch straight up: ok = false")
	}
	if !vecApprox(vel, cp.Vector{X: 0, Y: 700}, eps) {
		t.Errorf("velocity = %v, want (0, 700)", vel)
	}
	if !vecApprox(pos, cp.Vector{X: 0, Y: 213}, eps) {
		t.Errorf("spawn = %v, want (0, 213)", pos)
	}

	if _, _, ok := Launch(origin, origin, 30, 700); ok {
		t.Error("Launch at own position: ok = true, want false")
	}
}
