package orbit

import (
	"errors"
	"math"
	"testing"
)

func testConstants2D() (Central[Vec2], Constants) {
	central := Central[Vec2]{Pos: Vec2{0, 0}, Mass: 1000}
	consts := Constants{G: 50, BodyMass: 1, Dt: 0.01, Threshold: 1.0}
	return central, consts
}

func testConstants3D() (Central[Vec3], Constants) {
	central := Central[Vec3]{Pos: Vec3{0, 0, 0}, Mass: 1000}
	consts := Constants{G: 50, BodyMass: 1, Dt: 0.01, Threshold: 5.0}
	return central, consts
}

func TestStepConcrete2D(t *testing.T) {
	central, consts := testConstants2D()
	body := Body[Vec2]{Pos: Vec2{150, 0}, Vel: Vec2{0, 2.5}}

	next, err := Step(body, central, consts)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	// a = 50*1000/150^2 = 2.222222 toward the origin
	wantVel := Vec2{X: -0.022222, Y: 2.5}
	wantPos := Vec2{X: 149.999778, Y: 0.025}

	if math.Abs(next.Vel.X-wantVel.X) > 1e-6 || math.Abs(next.Vel.Y-wantVel.Y) > 1e-6 {
		t.Errorf("velocity: got (%.6f, %.6f), want (%.6f, %.6f)",
			next.Vel.X, next.Vel.Y, wantVel.X, wantVel.Y)
	}
	if math.Abs(next.Pos.X-wantPos.X) > 1e-6 || math.Abs(next.Pos.Y-wantPos.Y) > 1e-6 {
		t.Errorf("position: got (%.6f, %.6f), want (%.6f, %.6f)",
			next.Pos.X, next.Pos.Y, wantPos.X, wantPos.Y)
	}
}

func TestStepConcrete3D(t *testing.T) {
	central, consts := testConstants3D()
	body := Body[Vec3]{Pos: Vec3{150, 0, 0}, Vel: Vec3{0, 0, 15}}

	next, err := Step(body, central, consts)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	wantVel := Vec3{X: -0.022222, Y: 0, Z: 15}
	wantPos := Vec3{X: 149.999778, Y: 0, Z: 0.15}

	for i, pair := range [][2]float64{
		{next.Vel.X, wantVel.X}, {next.Vel.Y, wantVel.Y}, {next.Vel.Z, wantVel.Z},
		{next.Pos.X, wantPos.X}, {next.Pos.Y, wantPos.Y}, {next.Pos.Z, wantPos.Z},
	} {
		if math.Abs(pair[0]-pair[1]) > 1e-6 {
			t.Errorf("component %d: got %.6f, want %.6f", i, pair[0], pair[1])
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	central, consts := testConstants2D()
	body := Body[Vec2]{Pos: Vec2{150, 0}, Vel: Vec2{0, 2.5}}

	a, err1 := Step(body, central, consts)
	b, err2 := Step(body, central, consts)
	if err1 != nil || err2 != nil {
		t.Fatalf("step failed: %v %v", err1, err2)
	}
	if a != b {
		t.Errorf("identical inputs produced different outputs: %+v vs %+v", a, b)
	}
}

func TestStepProximityGuard(t *testing.T) {
	central, consts := testConstants2D()
	body := Body[Vec2]{Pos: Vec2{0.5, 0}, Vel: Vec2{0, 2.5}}

	got, err := Step(body, central, consts)
	if err == nil {
		t.Fatal("expected proximity error inside the threshold")
	}
	if !errors.Is(err, ErrProximity) {
		t.Errorf("expected ErrProximity, got %v", err)
	}

	var pe *ProximityError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProximityError, got %T", err)
	}
	if pe.Distance != 0.5 || pe.Threshold != 1.0 {
		t.Errorf("unexpected diagnostic: %+v", pe)
	}

	if got != body {
		t.Errorf("body mutated on rejected step: %+v", got)
	}
}

func TestStepBadConstants(t *testing.T) {
	central, consts := testConstants2D()
	body := Body[Vec2]{Pos: Vec2{150, 0}, Vel: Vec2{0, 2.5}}

	tests := []struct {
		name   string
		mutate func(*Central[Vec2], *Constants)
	}{
		{"zero dt", func(c *Central[Vec2], k *Constants) { k.Dt = 0 }},
		{"negative dt", func(c *Central[Vec2], k *Constants) { k.Dt = -0.01 }},
		{"zero central mass", func(c *Central[Vec2], k *Constants) { c.Mass = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, k := central, consts
			tt.mutate(&c, &k)
			if _, err := Step(body, c, k); !errors.Is(err, ErrBadConstants) {
				t.Errorf("expected ErrBadConstants, got %v", err)
			}
		})
	}
}

func TestCircularOrbitDrift(t *testing.T) {
	central, consts := testConstants2D()
	r0 := 150.0
	v0 := math.Sqrt(consts.G * central.Mass / r0)

	body := Body[Vec2]{Pos: Vec2{r0, 0}, Vel: Vec2{0, v0}}

	minR, maxR := r0, r0
	for i := 0; i < 10000; i++ {
		next, err := Step(body, central, consts)
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		body = next

		r := central.Pos.Sub(body.Pos).Norm()
		minR = math.Min(minR, r)
		maxR = math.Max(maxR, r)
	}

	if minR < 0.95*r0 || maxR > 1.05*r0 {
		t.Errorf("circular orbit drifted out of band: r in [%.3f, %.3f], want within 5%% of %.0f",
			minR, maxR, r0)
	}
}

func TestEnergyBoundOrbit(t *testing.T) {
	central, consts := testConstants2D()
	body := Body[Vec2]{Pos: Vec2{150, 0}, Vel: Vec2{0, 2.5}}

	if e := Energy(body, central, consts); e >= 0 {
		t.Errorf("bound orbit should have negative total energy, got %f", e)
	}
}

func TestAccelerationPointsInward(t *testing.T) {
	central, consts := testConstants2D()
	body := Body[Vec2]{Pos: Vec2{150, 0}, Vel: Vec2{0, 2.5}}

	acc := Acceleration(body, central, consts)
	if acc.X >= 0 || math.Abs(acc.Y) > 1e-12 {
		t.Errorf("acceleration should point toward the origin, got (%.6f, %.6f)", acc.X, acc.Y)
	}
}

func BenchmarkStep2D(b *testing.B) {
	central, consts := testConstants2D()
	body := Body[Vec2]{Pos: Vec2{150, 0}, Vel: Vec2{0, 18.25}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		body, _ = Step(body, central, consts)
	}
}

func BenchmarkStep3D(b *testing.B) {
	central, consts := testConstants3D()
	body := Body[Vec3]{Pos: Vec3{150, 0, 0}, Vel: Vec3{0, 0, 18.25}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		body, _ = Step(body, central, consts)
	}
}
