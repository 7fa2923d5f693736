package collision

import (
	"testing"

	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
)

func n(i int) fixed.F { return fixed.FromInt(i) }

func v(x, y int) gamemath.Vector { return gamemath.V(x, y) }

func newTestSpace(t *testing.T) *Space {
	t.Helper()
	s, err := NewSpace(n(16), n(16))
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	return s
}

// rect builds a rectangle hitbox anchored at its top-left corner.
func rect(s *Space, x, y, w, h int) *Hitbox {
	return s.NewRectangle(v(x, y), 0, 0, n(w), n(h))
}

// newMover creates an indexed body whose locator is also its collision
// hitbox.
func newMover(t *testing.T, s *Space, x, y, w, h, priority int, c Collider) *Body {
	t.Helper()
	b, ok := s.NewBody(rect(s, x, y, w, h), c)
	if !ok {
		t.Fatal("NewBody failed")
	}
	b.SetPriority(priority)
	if !b.SetCollisionHitbox(b.Locator()) {
		t.Fatal("SetCollisionHitbox failed")
	}
	s.Add(b)
	return b
}

// newWall creates an indexed static body with a solid locator.
func newWall(t *testing.T, s *Space, x, y, w, h int, surfaces Direction) *Body {
	t.Helper()
	b, ok := s.NewBody(rect(s, x, y, w, h), nil)
	if !ok {
		t.Fatal("NewBody failed")
	}
	b.Locator().SetSurfaces(surfaces)
	if !b.SetSolidHitbox(b.Locator()) {
		t.Fatal("SetSolidHitbox failed")
	}
	s.Add(b)
	return b
}

// recorder answers collisions with a fixed response, optionally per
// direction, and remembers every call.
type recorder struct {
	resp  Response
	byDir map[Direction]Response
	calls []Contact
}

func (r *recorder) Collide(self, other *Body, dir Direction) Response {
	resp := r.resp
	if got, ok := r.byDir[dir]; ok {
		resp = got
	}
	r.calls = append(r.calls, Contact{Other: other, Dir: dir, Response: resp})
	return resp
}
