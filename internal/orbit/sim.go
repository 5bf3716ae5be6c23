package orbit

import (
	"context"
	"fmt"
)

// Metric observes the body once per accepted step during a headless run.
type Metric[V Vector[V]] interface {
	Name() string
	Observe(b Body[V], t float64)
	Value() float64
	Reset()
}

// Simulation owns the complete state of one run: body, trail and run status.
// There is no package-level state; everything a renderer needs is read from
// the value itself.
type Simulation[V Vector[V]] struct {
	central Central[V]
	consts  Constants
	initial Body[V]
	body    Body[V]
	trail   *Trail[V]
	status  Status
	time    float64
	err     error
}

// NewSimulation builds a simulation and performs the initial reset, so the
// first Start is always legal.
func NewSimulation[V Vector[V]](initial Body[V], central Central[V], consts Constants, trailCap int) *Simulation[V] {
	s := &Simulation[V]{
		central: central,
		consts:  consts,
		initial: initial,
		trail:   NewTrail[V](trailCap),
	}
	s.Reset()
	return s
}

func (s *Simulation[V]) Body() Body[V] { return s.body }
func (s *Simulation[V]) Central() Central[V] { return s.central }
func (s *Simulation[V]) Constants() Constants { return s.consts }
func (s *Simulation[V]) Trail() *Trail[V] { return s.trail }
func (s *Simulation[V]) Status() Status { return s.status }
func (s *Simulation[V]) Time() float64 { return s.time }

// Err reports the diagnostic that halted the current run, nil while healthy.
// Cleared by Reset.
func (s *Simulation[V]) Err() error { return s.err }

// Radius is the current separation between body and central mass.
func (s *Simulation[V]) Radius() float64 {
	return s.central.Pos.Sub(s.body.Pos).Norm()
}

// Start begins ticking. No-op when already running.
func (s *Simulation[V]) Start() { s.status = StatusRunning }

// Stop halts ticking. No-op when already stopped.
func (s *Simulation[V]) Stop() { s.status = StatusStopped }

// Reset returns the simulation to its initial state from either status:
// stopped, body at its starting position and velocity, empty trail, no
// diagnostic. Calling it repeatedly is equivalent to calling it once.
func (s *Simulation[V]) Reset() {
	s.status = StatusStopped
	s.body = s.initial
	s.time = 0
	s.err = nil
	s.trail.Clear()
}

// Tick advances one fixed timestep and records the new position on the
// trail. It is a no-op while stopped. A proximity failure stops the run,
// leaves the body untouched and is retained until the next Reset.
func (s *Simulation[V]) Tick() error {
	if s.status != StatusRunning {
		return nil
	}

	next, err := Step(s.body, s.central, s.consts)
	if err != nil {
		s.status = StatusStopped
		s.err = err
		return err
	}

	s.body = next
	s.time += s.consts.Dt
	s.trail.Push(next.Pos)
	return nil
}

// Result collects the output of a headless run.
type Result[V Vector[V]] struct {
	Times      []float64
	Bodies     []Body[V]
	Metrics    map[string]float64
	StepsTaken int
	Halted     bool // run ended on a proximity failure before steps ran out
}

// Run drives the simulation for at most steps ticks without a display,
// observing metrics after every accepted step. The initial state is included
// as the first sample. A proximity halt is not an error here; it is reported
// through Result.Halted and Err.
func (s *Simulation[V]) Run(ctx context.Context, steps int, metrics []Metric[V]) (*Result[V], error) {
	if steps <= 0 {
		return nil, fmt.Errorf("orbit: steps must be positive, got %d", steps)
	}

	for _, m := range metrics {
		m.Reset()
	}

	res := &Result[V]{
		Times:   make([]float64, 0, steps+1),
		Bodies:  make([]Body[V], 0, steps+1),
		Metrics: make(map[string]float64),
	}

	s.Start()
	res.Times = append(res.Times, s.time)
	res.Bodies = append(res.Bodies, s.body)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		if err := s.Tick(); err != nil {
			res.Halted = true
			break
		}

		res.StepsTaken++
		res.Times = append(res.Times, s.time)
		res.Bodies = append(res.Bodies, s.body)

		for _, m := range metrics {
			m.Observe(s.body, s.time)
		}
	}

	s.Stop()

	for _, m := range metrics {
		res.Metrics[m.Name()] = m.Value()
	}

	return res, nil
}
