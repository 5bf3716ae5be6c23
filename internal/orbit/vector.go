package orbit

import "math"

// Vector is the method set shared by Vec2 and Vec3. Code written against it
// works for either dimensionality; a simulation never mixes the two.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	Norm() float64
	Dim() int
	Components() []float64
}

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dim() int { return 2 }
func (v Vec2) Components() []float64 { return []float64{v.X, v.Y} }

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
func (v Vec3) Dim() int { return 3 }
func (v Vec3) Components() []float64 { return []float64{v.X, v.Y, v.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
