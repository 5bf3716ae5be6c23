package viz

import (
	"math"
	"sort"

	"github.com/Vihaan2509/Simulations/internal/orbit"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// FromOrbit converts a simulation-space vector into drawing space.
func FromOrbit(p orbit.Vec3) Vec3 { return Vec3{p.X, p.Y, p.Z} }

// Camera projects world space onto the canvas. Rotation is applied around
// the world axes, then a simple perspective divide.
type Camera struct {
	Distance         float64
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, Near: 0.1, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn() { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(1e-4, c.Zoom/1.2) }

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts world coordinates to sub-pixel canvas coordinates.
// Returns x, y, depth and whether the point landed on the canvas. sw and sh
// are canvas cell dimensions.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)

	cw, ch := sw*2, sh*4
	minDim := float64(ch)
	if float64(cw) < minDim {
		minDim = float64(cw)
	}
	pScale := minDim / 3.0

	sx := int(rot.X*scale*pScale) + cw/2
	sy := int(-rot.Y*scale*pScale) + ch/2
	return sx, sy, rot.Z, sx >= 0 && sx < cw && sy >= 0 && sy < ch
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct {
	Edges []Edge
}

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) AddPoint(p Vec3) { w.Edges = append(w.Edges, Edge{p, p}) }
func (w *Wireframe) Clear() { w.Edges = w.Edges[:0] }

// AddPolyline appends the segments connecting consecutive points.
func (w *Wireframe) AddPolyline(pts []orbit.Vec3) {
	for i := 1; i < len(pts); i++ {
		w.AddEdge(FromOrbit(pts[i-1]), FromOrbit(pts[i]))
	}
}

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Render draws the wireframe to the canvas back-to-front.
func Render(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}

	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, c.Width, c.Height)
		x2, y2, d2, v2 := cam.Project(e.End, c.Width, c.Height)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })

	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}
