package orbit

// Body is the moving secondary mass. Acceleration is derived during a step
// and never stored.
type Body[V Vector[V]] struct {
	Pos V
	Vel V
}

// Central is the fixed dominant mass the body orbits. The integrator never
// mutates it.
type Central[V Vector[V]] struct {
	Pos  V
	Mass float64
}

// Constants hold the scalar parameters of a run. They are fixed for the
// lifetime of a simulation; changing them requires a full reset. The values
// are tuned for visually plausible trajectories, not physical units.
type Constants struct {
	G         float64 // gravitational constant, arbitrary scale
	BodyMass  float64 // secondary mass, only enters energy bookkeeping
	Dt        float64 // fixed timestep, decoupled from wall clock
	Threshold float64 // minimum allowed separation before the run halts
}

// Status is the run-control state. A simulation starts Stopped.
type Status int

const (
	StatusStopped Status = iota
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	default:
		return "stopped"
	}
}
