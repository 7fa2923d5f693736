package collision

import (
	"testing"

	"github.com/automoto/hitgrid/shared/gamemath"
)

func pointBody(t *testing.T, s *Space, x, y int, tags ...string) *Body {
	t.Helper()
	b, ok := s.NewBody(s.NewPoint(v(x, y)), nil)
	if !ok {
		t.Fatal("NewBody failed")
	}
	b.Tags = tags
	s.Add(b)
	return b
}

func TestNearest(t *testing.T) {
	s := newTestSpace(t)
	west := pointBody(t, s, -10, 0, "coin")
	east := pointBody(t, s, 10, 0)
	far := pointBody(t, s, 0, 100, "coin")

	tests := []struct {
		name string
		f    Filter
		want *Body
	}{
		{"tie goes to the first created", nil, west},
		{"excluding the winner", Except(west), east},
		{"tagged", Tagged("coin"), west},
		{"tagged and excluded", And(Tagged("coin"), Except(west)), far},
		{"nothing accepted", Tagged("missing"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				if got := s.Nearest(v(0, 0), tt.f); got != tt.want {
					t.Fatalf("Nearest = %v, want %v", got, tt.want)
				}
			}
		})
	}

	if got := s.NearestWithin(v(0, 0), n(5), nil); got != nil {
		t.Errorf("NearestWithin 5 = %v, want nil", got)
	}
	if got := s.NearestWithin(v(0, 0), n(10), Not(Tagged("coin"))); got != east {
		t.Errorf("NearestWithin 10 = %v, want east", got)
	}
}

func TestWithinRectangleAndCircle(t *testing.T) {
	s := newTestSpace(t)
	a := pointBody(t, s, 0, 0)
	b := pointBody(t, s, 20, 0)
	c := pointBody(t, s, 3, 4)

	got := s.WithinRectangle(gamemath.Rect{Left: 0, Top: 0, Right: n(20), Bottom: n(10)}, nil)
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Errorf("WithinRectangle returned %d bodies, want all three in id order", len(got))
	}

	got = s.WithinCircle(v(0, 0), n(5), nil)
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("WithinCircle returned %d bodies, want a and c", len(got))
	}
}

func overlapBody(t *testing.T, s *Space, h *Hitbox, tags ...string) *Body {
	t.Helper()
	b, ok := s.NewBody(h, nil)
	if !ok {
		t.Fatal("NewBody failed")
	}
	b.SetOverlapHitbox(h)
	b.Tags = tags
	s.Add(b)
	return b
}

func TestOverlapQueries(t *testing.T) {
	s := newTestSpace(t)
	coin := overlapBody(t, s, s.NewCircle(v(0, 0), n(5)), "coin")
	spike := overlapBody(t, s, rect(s, 8, 2, 4, 4), "hazard")
	gem := overlapBody(t, s, s.NewCircle(v(11, 5), n(1)), "gem")

	query := rect(s, 4, 4, 5, 5)
	if got := s.BoundingBoxesMeet(query, nil); len(got) != 2 {
		t.Errorf("BoundingBoxesMeet = %d bodies, want 2", len(got))
	}
	got := s.Overlapping(query, nil)
	if len(got) != 1 || got[0] != spike {
		t.Errorf("Overlapping = %v, want only the spike", got)
	}
	if !s.IsOverlapping(query, Tagged("hazard")) {
		t.Error("IsOverlapping(hazard) = false")
	}
	if s.IsOverlapping(query, Tagged("coin")) {
		t.Error("IsOverlapping(coin) = true")
	}

	if got := coin.OverlappingBodies(nil); len(got) != 0 {
		t.Errorf("coin overlaps %v, want nothing", got)
	}
	if got := spike.OverlappingBodies(nil); len(got) != 1 || got[0] != gem {
		t.Errorf("spike overlaps %v, want the gem", got)
	}
	if !gem.IsOverlappingAny(Tagged("hazard")) {
		t.Error("gem should overlap the spike")
	}
}

func TestIntersectingSolids(t *testing.T) {
	s := newTestSpace(t)
	wall := newWall(t, s, 0, 0, 10, 10, DirAll)
	newWall(t, s, 40, 0, 10, 10, DirAll)

	got := s.IntersectingSolids(s.NewCircle(v(12, 5), n(3)), nil)
	if len(got) != 1 || got[0] != wall {
		t.Errorf("IntersectingSolids = %v, want the first wall", got)
	}
	if got := s.IntersectingSolids(s.NewPoint(v(25, 5)), nil); len(got) != 0 {
		t.Errorf("IntersectingSolids in the gap = %v", got)
	}
}

func TestQueriesSkipRemovedBodies(t *testing.T) {
	s := newTestSpace(t)
	b := pointBody(t, s, 0, 0)
	s.Remove(b)
	if got := s.Nearest(v(0, 0), nil); got != nil {
		t.Errorf("Nearest = %v after removal", got)
	}
	if s.Len() != 0 || s.Contains(b) {
		t.Error("space still holds the removed body")
	}
}
