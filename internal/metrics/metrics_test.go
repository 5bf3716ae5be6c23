package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/Vihaan2509/Simulations/internal/orbit"
)

func circularSim() (*orbit.Simulation[orbit.Vec2], orbit.Central[orbit.Vec2], orbit.Constants) {
	central := orbit.Central[orbit.Vec2]{Pos: orbit.Vec2{X: 0, Y: 0}, Mass: 1000}
	consts := orbit.Constants{G: 50, BodyMass: 1, Dt: 0.01, Threshold: 1.0}
	r0 := 150.0
	v0 := math.Sqrt(consts.G * central.Mass / r0)
	initial := orbit.Body[orbit.Vec2]{Pos: orbit.Vec2{X: r0}, Vel: orbit.Vec2{Y: v0}}
	return orbit.NewSimulation(initial, central, consts, 1000), central, consts
}

func TestCircularOrbitMetrics(t *testing.T) {
	sim, central, consts := circularSim()

	energy := NewEnergy(central, consts)
	drift := NewEnergyDrift(central, consts)
	radial := NewRadialDrift(central)

	res, err := sim.Run(context.Background(), 5000, []orbit.Metric[orbit.Vec2]{energy, drift, radial})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if res.Metrics["energy"] >= 0 {
		t.Errorf("bound orbit should report negative mean energy, got %f", res.Metrics["energy"])
	}
	if res.Metrics["energy_drift"] > 0.02 {
		t.Errorf("energy drift too large for circular orbit: %f", res.Metrics["energy_drift"])
	}
	if res.Metrics["radial_drift"] > 0.05 {
		t.Errorf("radial drift too large for circular orbit: %f", res.Metrics["radial_drift"])
	}
}

func TestRadialDriftEccentric(t *testing.T) {
	central := orbit.Central[orbit.Vec2]{Pos: orbit.Vec2{}, Mass: 1000}
	consts := orbit.Constants{G: 50, BodyMass: 1, Dt: 0.01, Threshold: 1.0}
	// Well below circular speed: a strongly eccentric ellipse.
	initial := orbit.Body[orbit.Vec2]{Pos: orbit.Vec2{X: 150}, Vel: orbit.Vec2{Y: 9}}
	sim := orbit.NewSimulation(initial, central, consts, 1000)

	radial := NewRadialDrift(central)
	if _, err := sim.Run(context.Background(), 5000, []orbit.Metric[orbit.Vec2]{radial}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if radial.Value() < 0.2 {
		t.Errorf("eccentric orbit should show substantial radial drift, got %f", radial.Value())
	}
}

func TestMetricReset(t *testing.T) {
	central := orbit.Central[orbit.Vec2]{Pos: orbit.Vec2{}, Mass: 1000}
	consts := orbit.Constants{G: 50, BodyMass: 1, Dt: 0.01, Threshold: 1.0}
	body := orbit.Body[orbit.Vec2]{Pos: orbit.Vec2{X: 150}, Vel: orbit.Vec2{Y: 2.5}}

	e := NewEnergy(central, consts)
	e.Observe(body, 0)
	if e.Value() == 0 {
		t.Fatal("expected non-zero energy after observation")
	}
	e.Reset()
	if e.Value() != 0 {
		t.Errorf("reset did not clear the metric: %f", e.Value())
	}
}
