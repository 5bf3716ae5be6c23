package field

import (
	"math"

	"github.com/Vihaan2509/Simulations/internal/orbit"
)

// Solenoid models a coil centered on the origin with its axis along Z. The
// field is approximated by point dipoles spaced along the axis, which is
// cheap and close enough for a field-line display.
type Solenoid struct {
	Radius  float64 // coil radius
	Length  float64 // axial length
	Turns   int     // winding turns, drawn as a helix
	Moment  float64 // dipole strength per axial sample
	Samples int     // number of axial dipole samples
}

func NewSolenoid() *Solenoid {
	return &Solenoid{Radius: 20, Length: 80, Turns: 12, Moment: 1.0, Samples: 9}
}

// Coil returns the winding helix as a polyline with segsPerTurn segments
// per turn.
func (s *Solenoid) Coil(segsPerTurn int) []orbit.Vec3 {
	n := s.Turns * segsPerTurn
	pts := make([]orbit.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		ang := 2 * math.Pi * float64(i) / float64(segsPerTurn)
		pts = append(pts, orbit.Vec3{
			X: s.Radius * math.Cos(ang),
			Y: s.Radius * math.Sin(ang),
			Z: -s.Length/2 + s.Length*float64(i)/float64(n),
		})
	}
	return pts
}

// FieldAt evaluates the magnetic field at p. Each axial sample contributes a
// dipole field with moment along +Z: B ~ (3(m·r̂)r̂ − m)/r³.
func (s *Solenoid) FieldAt(p orbit.Vec3) orbit.Vec3 {
	var b orbit.Vec3
	for i := 0; i < s.Samples; i++ {
		z := -s.Length/2 + s.Length*(float64(i)+0.5)/float64(s.Samples)
		d := p.Sub(orbit.Vec3{Z: z})
		r := d.Norm()
		if r < 1e-6 {
			continue
		}
		rh := d.Scale(1 / r)
		term := rh.Scale(3 * rh.Z).Sub(orbit.Vec3{Z: 1}).Scale(s.Moment / (r * r * r))
		b = b.Add(term)
	}
	return b
}

// FieldLine traces a field line from seed by Euler-stepping along the local
// field direction. Tracing stops when the field vanishes, the line leaves
// the display region or maxPoints is reached.
func (s *Solenoid) FieldLine(seed orbit.Vec3, step float64, maxPoints int) []orbit.Vec3 {
	pts := make([]orbit.Vec3, 0, maxPoints)
	p := seed
	for i := 0; i < maxPoints; i++ {
		pts = append(pts, p)
		b := s.FieldAt(p)
		n := b.Norm()
		if n < 1e-9 || p.Norm() > 4*s.Length {
			break
		}
		p = p.Add(b.Scale(step / n))
	}
	return pts
}

// FieldLines seeds count lines across the bore at the bottom end of the
// coil, in the XZ plane.
func (s *Solenoid) FieldLines(count, maxPoints int) [][]orbit.Vec3 {
	lines := make([][]orbit.Vec3, 0, count)
	for i := 0; i < count; i++ {
		frac := (float64(i) + 0.5) / float64(count)
		seed := orbit.Vec3{
			X: (2*frac - 1) * 0.8 * s.Radius,
			Z: -s.Length / 2,
		}
		lines = append(lines, s.FieldLine(seed, s.Length/40, maxPoints))
	}
	return lines
}
