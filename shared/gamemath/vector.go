// Package gamemath holds the numeric core of planet locomotion: gravity,
// upright orientation, walking and jumping vectors, and aiming. It works on
// plain cp vectors and has no dependency on ebitengine or donburi.
package gamemath

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Up is the reference "up" axis of world space (y-up).
var Up = cp.Vector{X: 0, Y: 1}

// Normalize returns v scaled to unit length, or the zero vector when v is zero.
func Normalize(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// IsZero reports whether both components are exactly zero.
func IsZero(v cp.Vector) bool {
	return v.X == 0 && v.Y == 0
}

// AngleBetween returns the unsigned angle in [0, π] between a and b.
// The angle involving a zero vector is 0.
func AngleBetween(a, b cp.Vector) float64 {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}
