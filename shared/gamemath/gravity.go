package gamemath

import "github.com/jakecoffman/cp"

// GravityForce returns the constant-magnitude pull from pos toward center.
// ok is false when pos lies farther than reach from center; the force is
// not inverse-square.
func GravityForce(center, pos cp.Vector, reach, magnitude float64) (force cp.Vector, ok bool) {
	diff := center.Sub(pos)
	if diff.LengthSq() > reach*reach {
		return cp.Vector{}, false
	}
	return Normalize(diff).Mult(magnitude), true
}

// UprightAngle returns the rotation applied to a body attracted to center.
// The magnitude is the unsigned angle between the centre offset and Up; the
// sign is positive only when the body sits right of the world's vertical
// axis. This is a hemisphere heuristic, not a signed atan2 angle.
func UprightAngle(center, pos cp.Vector) float64 {
	angle := AngleBetween(center.Sub(pos), Up)
	if Up.X < pos.X {
		return angle
	}
	return -angle
}
