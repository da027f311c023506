package config

// StateID identifies a locomotion state.
type StateID int

const (
	StateGrounded StateID = iota
	StateAirborne
	StateCrouching
	StateSliding
)

func (s StateID) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateAirborne:
		return "airborne"
	case StateCrouching:
		return "crouching"
	case StateSliding:
		return "sliding"
	default:
		return "unknown"
	}
}
