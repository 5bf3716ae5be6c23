package field

import (
	"math"

	"github.com/Vihaan2509/Simulations/internal/orbit"
)

// Mass is a point source deforming the well grid.
type Mass struct {
	Pos orbit.Vec3
	M   float64
}

// Well computes the cosmetic "spacetime well" overlay: a flat square grid in
// the orbital plane whose vertices are pulled down by every mass with a
// radial falloff. Purely visual; the integrator never reads it.
type Well struct {
	Extent    float64 // half-width of the grid
	Spacing   float64 // distance between grid lines
	Strength  float64 // depth scale
	Softening float64 // keeps the dip finite at a mass position
}

func NewWell() *Well {
	return &Well{Extent: 300, Spacing: 25, Strength: 1.0, Softening: 10}
}

// Depth is the downward displacement of the grid at (x, y):
// sum over masses of strength*M/(r+softening).
func (w *Well) Depth(x, y float64, masses []Mass) float64 {
	d := 0.0
	for _, m := range masses {
		dx, dy := x-m.Pos.X, y-m.Pos.Y
		r := math.Sqrt(dx*dx + dy*dy)
		d += w.Strength * m.M / (r + w.Softening)
	}
	return d
}

// Lines returns the displaced grid as polylines, one per row and one per
// column, ready for wireframe rendering.
func (w *Well) Lines(masses []Mass) [][]orbit.Vec3 {
	n := int(2*w.Extent/w.Spacing) + 1
	lines := make([][]orbit.Vec3, 0, 2*n)

	vertex := func(i, j int) orbit.Vec3 {
		x := -w.Extent + float64(i)*w.Spacing
		y := -w.Extent + float64(j)*w.Spacing
		return orbit.Vec3{X: x, Y: y, Z: -w.Depth(x, y, masses)}
	}

	for j := 0; j < n; j++ {
		row := make([]orbit.Vec3, n)
		for i := 0; i < n; i++ {
			row[i] = vertex(i, j)
		}
		lines = append(lines, row)
	}
	for i := 0; i < n; i++ {
		col := make([]orbit.Vec3, n)
		for j := 0; j < n; j++ {
			col[j] = vertex(i, j)
		}
		lines = append(lines, col)
	}

	return lines
}
