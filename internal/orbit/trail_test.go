package orbit

import "testing"

func TestTrailFIFO(t *testing.T) {
	tr := NewTrail[Vec2](5)

	for i := 0; i < 8; i++ {
		tr.Push(Vec2{X: float64(i)})
	}

	if tr.Len() != 5 {
		t.Fatalf("expected length 5, got %d", tr.Len())
	}

	pts := tr.Points()
	for i, p := range pts {
		want := float64(i + 3) // 0,1,2 evicted
		if p.X != want {
			t.Errorf("point %d: got %.0f, want %.0f", i, p.X, want)
		}
	}
}

func TestTrailPartialFill(t *testing.T) {
	tr := NewTrail[Vec2](5)
	tr.Push(Vec2{X: 1})
	tr.Push(Vec2{X: 2})

	if tr.Len() != 2 {
		t.Errorf("expected length 2, got %d", tr.Len())
	}
	pts := tr.Points()
	if len(pts) != 2 || pts[0].X != 1 || pts[1].X != 2 {
		t.Errorf("unexpected points: %+v", pts)
	}
}

func TestTrailIterateIdempotent(t *testing.T) {
	tr := NewTrail[Vec2](4)
	for i := 0; i < 6; i++ {
		tr.Push(Vec2{X: float64(i)})
	}

	first := tr.Points()
	second := tr.Points()

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
	if tr.Len() != 4 {
		t.Errorf("Points consumed the buffer: length %d", tr.Len())
	}
}

func TestTrailClear(t *testing.T) {
	tr := NewTrail[Vec3](3)
	for i := 0; i < 5; i++ {
		tr.Push(Vec3{X: float64(i)})
	}

	tr.Clear()

	if tr.Len() != 0 {
		t.Errorf("expected empty trail, got length %d", tr.Len())
	}
	if len(tr.Points()) != 0 {
		t.Errorf("expected no points after clear")
	}
	if tr.Cap() != 3 {
		t.Errorf("clear changed capacity: %d", tr.Cap())
	}

	tr.Push(Vec3{X: 9})
	if pts := tr.Points(); len(pts) != 1 || pts[0].X != 9 {
		t.Errorf("push after clear broken: %+v", pts)
	}
}

func TestTrailDefaultCapacity(t *testing.T) {
	tr := NewTrail[Vec2](0)
	if tr.Cap() != DefaultTrailCap {
		t.Errorf("expected default capacity %d, got %d", DefaultTrailCap, tr.Cap())
	}
}
