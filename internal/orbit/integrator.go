package orbit

// Acceleration returns the gravitational acceleration of the body toward
// the central mass. The caller is responsible for the proximity guard; the
// separation must be non-zero.
func Acceleration[V Vector[V]](b Body[V], c Central[V], k Constants) V {
	d := c.Pos.Sub(b.Pos)
	r := d.Norm()
	// a = G*M/r^2 along d/r, folded into one scale
	return d.Scale(k.G * c.Mass / (r * r * r))
}

// Step advances the body one fixed timestep using semi-implicit Euler:
// velocity from the current-step acceleration, then position from the
// already-updated velocity. The input body is returned unchanged on error.
//
// When the separation is below the collision threshold the step is rejected
// with a [*ProximityError]; the caller treats that as the end of the run.
func Step[V Vector[V]](b Body[V], c Central[V], k Constants) (Body[V], error) {
	if k.Dt <= 0 || c.Mass <= 0 {
		return b, ErrBadConstants
	}

	d := c.Pos.Sub(b.Pos)
	r := d.Norm()
	if r < k.Threshold {
		return b, &ProximityError{Distance: r, Threshold: k.Threshold}
	}

	acc := d.Scale(k.G * c.Mass / (r * r * r))
	vel := b.Vel.Add(acc.Scale(k.Dt))
	pos := b.Pos.Add(vel.Scale(k.Dt))

	return Body[V]{Pos: pos, Vel: vel}, nil
}

// Energy is the total orbital energy of the body: kinetic plus gravitational
// potential. Negative for bound orbits.
func Energy[V Vector[V]](b Body[V], c Central[V], k Constants) float64 {
	v := b.Vel.Norm()
	r := c.Pos.Sub(b.Pos).Norm()
	return 0.5*k.BodyMass*v*v - k.G*c.Mass*k.BodyMass/r
}
