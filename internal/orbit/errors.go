package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrProximity indicates the bodies came closer than the collision
	// threshold. The current run is over; a Reset recovers.
	ErrProximity = errors.New("orbit: bodies within collision threshold")

	// ErrBadConstants indicates a non-positive timestep or central mass.
	ErrBadConstants = errors.New("orbit: invalid simulation constants")
)

// ProximityError carries the separation observed at the rejected step.
// It unwraps to [ErrProximity].
type ProximityError struct {
	Distance  float64
	Threshold float64
}

func (e *ProximityError) Error() string {
	return fmt.Sprintf("orbit: separation %.4f below threshold %.4f", e.Distance, e.Threshold)
}

func (e *ProximityError) Unwrap() error { return ErrProximity }
