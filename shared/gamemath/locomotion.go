package gamemath

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Clockwise returns the unit tangent at a body whose offset to its planet's
// centre is diff.
func Clockwise(diff cp.Vector) cp.Vector {
	return Normalize(cp.Vector{X: diff.Y, Y: -diff.X})
}

// DirectionFactor is +1 when direction is within 90° of clockwise, else -1.
// A zero direction counts as clockwise.
func DirectionFactor(direction, clockwise cp.Vector) float64 {
	if AngleBetween(direction, clockwise) < math.Pi/2 {
		return 1
	}
	return -1
}

// JumpImpulse launches a body away from its planet, biased toward the held
// direction when there is one.
func JumpImpulse(diff, clockwise cp.Vector, factor float64, hasDirection bool, magnitude float64) cp.Vector {
	dir := Normalize(diff)
	if hasDirection {
		dir = dir.Add(clockwise.Mult(factor))
	}
	return Normalize(dir).Mult(-magnitude)
}

// AirImpulse is the per-tick air control push: a tangential part weighted by
// tangent plus a unit push away from the planet.
func AirImpulse(diff, clockwise cp.Vector, factor, tangent, magnitude float64) cp.Vector {
	return clockwise.Mult(factor * tangent).Sub(Normalize(diff)).Mult(magnitude)
}

// OrbitStep advances pos around center by speed·factor·dt radians and
// returns the new position at distance radius from center.
func OrbitStep(center, pos cp.Vector, radius, speed, factor, dt float64) cp.Vector {
	rel := pos.Sub(center)
	angle := math.Atan2(rel.Y, rel.X) + speed*factor*dt
	return center.Add(cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}.Mult(radius))
}

// GroundCorrection is the impulse that brings velocity to the desired
// tangential ground speed in a single step.
func GroundCorrection(clockwise cp.Vector, factor, groundSpeed, mass float64, velocity cp.Vector) cp.Vector {
	desired := clockwise.Mult(factor * groundSpeed)
	return desired.Sub(velocity).Mult(mass)
}
