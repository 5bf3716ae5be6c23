// Package orbit provides the two-body simulation core.
//
// The package defines the types and operations for a fixed central mass and
// a moving secondary body under inverse-square attraction:
//
//   - [Vec2], [Vec3]: vector types; [Vector] is the shared constraint so the
//     integrator is written once over dimension
//   - [Step]: semi-implicit Euler integration of one fixed timestep
//   - [Trail]: bounded FIFO buffer of recently visited positions
//   - [Simulation]: owned run state with Start/Stop/Reset/Tick control
//
// # Example
//
//	sim := orbit.NewSimulation(body, central, consts, 1000)
//	sim.Start()
//	for range frames {
//	    sim.Tick()
//	}
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. They are designed to be driven
// by a single per-frame caller.
package orbit
