package config

// LocomotionState is the per-tick movement state of a player.
type LocomotionState int

const (
	LocomotionAirborne LocomotionState = iota
	LocomotionGroundedIdle
	LocomotionGroundedWalking
	LocomotionGroundedJumping
)

func (s LocomotionState) String() string {
	switch s {
	case LocomotionAirborne:
		return "airborne"
	case LocomotionGroundedIdle:
		return "idle"
	case LocomotionGroundedWalking:
		return "walking"
	case LocomotionGroundedJumping:
		return "jumping"
	}
	return "unknown"
}

// Grounded reports whether the state implies surface contact.
func (s LocomotionState) Grounded() bool {
	return s != LocomotionAirborne
}
