package gamemath

import "github.com/jakecoffman/cp"

// AimPoint maps a pointer position (y-up screen pixels) to world space for a
// camera centred on camera with the given world-units-per-pixel scale.
func AimPoint(camera, pointer, screenCenter cp.Vector, scale float64) cp.Vector {
	return camera.Add(pointer.Sub(screenCenter).Mult(scale))
}

// Launch returns the spawn position and velocity of a projectile fired from
// origin toward target. ok is false when target coincides with origin.
func Launch(origin, target cp.Vector, offset, speed float64) (pos, vel cp.Vector, ok bool) {
	dir := Normalize(target.Sub(origin))
	if IsZero(dir) {
		return cp.Vector{}, cp.Vector{}, false
	}
	return origin.Add(dir.Mult(offset)), dir.Mult(speed), true
}
