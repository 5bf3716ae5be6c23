package orbit

// DefaultTrailCap matches the path length used by the original sketches.
const DefaultTrailCap = 1000

// Trail retains the most recent positions in visiting order so the renderer
// can draw them as a connected polyline. Capacity is fixed at construction;
// once full, pushing evicts the oldest entry.
type Trail[V Vector[V]] struct {
	data []V
	pos  int
	full bool
}

func NewTrail[V Vector[V]](capacity int) *Trail[V] {
	if capacity <= 0 {
		capacity = DefaultTrailCap
	}
	return &Trail[V]{data: make([]V, capacity)}
}

func (t *Trail[V]) Cap() int { return len(t.data) }

func (t *Trail[V]) Len() int {
	if t.full {
		return len(t.data)
	}
	return t.pos
}

// Push appends a position, evicting the oldest entry once at capacity.
func (t *Trail[V]) Push(p V) {
	t.data[t.pos] = p
	t.pos++
	if t.pos == len(t.data) {
		t.pos = 0
		t.full = true
	}
}

// Clear empties the trail without releasing the backing array.
func (t *Trail[V]) Clear() {
	t.pos = 0
	t.full = false
}

// Points returns the retained positions oldest-first. The result is a copy:
// repeated calls without an intervening Push yield identical sequences and
// the buffer is never consumed.
func (t *Trail[V]) Points() []V {
	out := make([]V, 0, t.Len())
	if t.full {
		out = append(out, t.data[t.pos:]...)
	}
	return append(out, t.data[:t.pos]...)
}
