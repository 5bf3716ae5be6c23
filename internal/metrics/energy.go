package metrics

import (
	"math"

	"github.com/Vihaan2509/Simulations/internal/orbit"
)

// Energy reports the mean total orbital energy over a run. Constant energy
// is the sanity signal for the integrator; the mean gives a single scalar.
type Energy[V orbit.Vector[V]] struct {
	central orbit.Central[V]
	consts  orbit.Constants
	total   float64
	samples int
}

func NewEnergy[V orbit.Vector[V]](central orbit.Central[V], consts orbit.Constants) *Energy[V] {
	return &Energy[V]{central: central, consts: consts}
}

func (e *Energy[V]) Name() string { return "energy" }

func (e *Energy[V]) Observe(b orbit.Body[V], t float64) {
	e.total += orbit.Energy(b, e.central, e.consts)
	e.samples++
}

func (e *Energy[V]) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy[V]) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift reports the maximum relative deviation from the energy of the
// first observed state.
type EnergyDrift[V orbit.Vector[V]] struct {
	central  orbit.Central[V]
	consts   orbit.Constants
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift[V orbit.Vector[V]](central orbit.Central[V], consts orbit.Constants) *EnergyDrift[V] {
	return &EnergyDrift[V]{central: central, consts: consts}
}

func (e *EnergyDrift[V]) Name() string { return "energy_drift" }

func (e *EnergyDrift[V]) Observe(b orbit.Body[V], t float64) {
	energy := orbit.Energy(b, e.central, e.consts)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift[V]) Value() float64 { return e.maxDrift }

func (e *EnergyDrift[V]) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
