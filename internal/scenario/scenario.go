package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Vihaan2509/Simulations/internal/orbit"
)

// Scenario kinds. The dimensionality is fixed for the lifetime of a run.
const (
	Orbit2D = "orbit2d"
	Orbit3D = "orbit3d"
)

// Defaults from the original sketches. Deliberately unphysical; tuned for
// plausible trajectories on screen.
const (
	DefaultG           = 50.0
	DefaultCentralMass = 1000.0
	DefaultBodyMass    = 1.0
	DefaultDt          = 0.01
	Threshold2D        = 1.0
	Threshold3D        = 5.0
)

type InitState struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	Z  float64 `yaml:"z"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
	VZ float64 `yaml:"vz"`
}

type Config struct {
	Scenario    string    `yaml:"scenario"`
	G           float64   `yaml:"g"`
	CentralMass float64   `yaml:"central_mass"`
	BodyMass    float64   `yaml:"body_mass"`
	Dt          float64   `yaml:"dt"`
	Threshold   float64   `yaml:"threshold"`
	TrailCap    int       `yaml:"trail_capacity"`
	Init        InitState `yaml:"init_state"`
}

// Default is the classic 2-D sketch: an eccentric ellipse that swings close
// to the star without hitting the threshold.
func Default() *Config {
	return &Config{
		Scenario:    Orbit2D,
		G:           DefaultG,
		CentralMass: DefaultCentralMass,
		BodyMass:    DefaultBodyMass,
		Dt:          DefaultDt,
		Threshold:   Threshold2D,
		TrailCap:    orbit.DefaultTrailCap,
		Init:        InitState{X: 150, VY: 2.5},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Constants assembles the integrator constants, filling the collision
// threshold from the scenario kind when the config leaves it zero.
func (c *Config) Constants() orbit.Constants {
	threshold := c.Threshold
	if threshold == 0 {
		if c.Scenario == Orbit3D {
			threshold = Threshold3D
		} else {
			threshold = Threshold2D
		}
	}
	return orbit.Constants{
		G:         c.G,
		BodyMass:  c.BodyMass,
		Dt:        c.Dt,
		Threshold: threshold,
	}
}

// Dim returns the vector dimensionality of the scenario.
func (c *Config) Dim() int {
	if c.Scenario == Orbit3D {
		return 3
	}
	return 2
}

// Build2D constructs the simulation for a 2-D scenario.
func (c *Config) Build2D() (*orbit.Simulation[orbit.Vec2], error) {
	if c.Scenario != Orbit2D {
		return nil, fmt.Errorf("scenario: %q is not a 2-D scenario", c.Scenario)
	}
	initial := orbit.Body[orbit.Vec2]{
		Pos: orbit.Vec2{X: c.Init.X, Y: c.Init.Y},
		Vel: orbit.Vec2{X: c.Init.VX, Y: c.Init.VY},
	}
	central := orbit.Central[orbit.Vec2]{Mass: c.CentralMass}
	return orbit.NewSimulation(initial, central, c.Constants(), c.TrailCap), nil
}

// Build3D constructs the simulation for a 3-D scenario.
func (c *Config) Build3D() (*orbit.Simulation[orbit.Vec3], error) {
	if c.Scenario != Orbit3D {
		return nil, fmt.Errorf("scenario: %q is not a 3-D scenario", c.Scenario)
	}
	initial := orbit.Body[orbit.Vec3]{
		Pos: orbit.Vec3{X: c.Init.X, Y: c.Init.Y, Z: c.Init.Z},
		Vel: orbit.Vec3{X: c.Init.VX, Y: c.Init.VY, Z: c.Init.VZ},
	}
	central := orbit.Central[orbit.Vec3]{Mass: c.CentralMass}
	return orbit.NewSimulation(initial, central, c.Constants(), c.TrailCap), nil
}
