package metrics

import (
	"math"

	"github.com/Vihaan2509/Simulations/internal/orbit"
)

// RadialDrift reports the maximum relative deviation of the orbital radius
// from the radius of the first observed state. Near zero for a circular
// orbit; large for eccentric or decaying ones.
type RadialDrift[V orbit.Vector[V]] struct {
	central  orbit.Central[V]
	initial  float64
	maxDrift float64
	samples  int
}

func NewRadialDrift[V orbit.Vector[V]](central orbit.Central[V]) *RadialDrift[V] {
	return &RadialDrift[V]{central: central}
}

func (r *RadialDrift[V]) Name() string { return "radial_drift" }

func (r *RadialDrift[V]) Observe(b orbit.Body[V], t float64) {
	radius := r.central.Pos.Sub(b.Pos).Norm()

	if r.samples == 0 {
		r.initial = radius
	}
	r.samples++

	if r.initial != 0 {
		drift := math.Abs(radius-r.initial) / r.initial
		r.maxDrift = math.Max(r.maxDrift, drift)
	}
}

func (r *RadialDrift[V]) Value() float64 { return r.maxDrift }

func (r *RadialDrift[V]) Reset() {
	r.initial = 0
	r.maxDrift = 0
	r.samples = 0
}
