package collision

import (
	"testing"

	"github.com/automoto/hitgrid/shared/gamemath"
)

func TestAbsoluteTransformChain(t *testing.T) {
	s := newTestSpace(t)
	root := s.NewPoint(v(10, 20))
	root.SetRelativeAngle(n(90))
	child := s.NewPoint(v(5, 0))
	child.SetRelativeAngle(n(90))
	grand := s.NewPoint(v(0, 3))

	if !root.AddChild(child) || !child.AddChild(grand) {
		t.Fatal("AddChild failed")
	}

	checks := []struct {
		name  string
		h     *Hitbox
		pos   gamemath.Vector
		angle int
		flipX bool
	}{
		{"child", child, v(10, 15), 180, false},
		{"grandchild", grand, v(10, 12), 180, false},
	}
	for _, c := range checks {
		if got := c.h.AbsolutePosition(); got != c.pos {
			t.Errorf("%s position = %v, want %v", c.name, got, c.pos)
		}
		if got := c.h.AbsoluteAngle(); got != n(c.angle) {
			t.Errorf("%s angle = %v, want %d", c.name, got, c.angle)
		}
	}

	// Flipping an ancestor mirrors positions and turns angles the other way.
	root.SetRelativeFlipX(true)
	checks = []struct {
		name  string
		h     *Hitbox
		pos   gamemath.Vector
		angle int
		flipX bool
	}{
		{"child", child, v(10, 25), 0, true},
		{"grandchild", grand, v(10, 28), 0, true},
	}
	for _, c := range checks {
		if got := c.h.AbsolutePosition(); got != c.pos {
			t.Errorf("flipped %s position = %v, want %v", c.name, got, c.pos)
		}
		if got := c.h.AbsoluteAngle(); got != n(c.angle) {
			t.Errorf("flipped %s angle = %v, want %d", c.name, got, c.angle)
		}
		if got := c.h.AbsoluteFlipX(); got != c.flipX {
			t.Errorf("flipped %s flipX = %v, want %v", c.name, got, c.flipX)
		}
	}

	root.Translate(v(1, 1))
	if got, want := grand.AbsolutePosition(), v(11, 29); got != want {
		t.Errorf("after moving the root, grandchild at %v, want %v", got, want)
	}
}

func TestRectangleQuarterTurns(t *testing.T) {
	s := newTestSpace(t)
	tests := []struct {
		angle int
		want  gamemath.Rect
	}{
		{0, gamemath.Rect{Left: n(0), Top: n(0), Right: n(10), Bottom: n(4)}},
		{90, gamemath.Rect{Left: n(0), Top: n(-10), Right: n(4), Bottom: n(0)}},
		{180, gamemath.Rect{Left: n(-10), Top: n(-4), Right: n(0), Bottom: n(0)}},
		{270, gamemath.Rect{Left: n(-4), Top: n(0), Right: n(0), Bottom: n(10)}},
		{-90, gamemath.Rect{Left: n(-4), Top: n(0), Right: n(0), Bottom: n(10)}},
	}
	for _, tt := range tests {
		h := s.NewRectangle(v(0, 0), 0, 0, n(10), n(4))
		h.SetRelativeAngle(n(tt.angle))
		if got := h.Bounds(); got != tt.want {
			t.Errorf("angle %d: bounds = %+v, want %+v", tt.angle, got, tt.want)
		}
	}
}

func TestRectangleFlip(t *testing.T) {
	s := newTestSpace(t)
	h := s.NewRectangle(v(100, 0), n(2), n(1), n(10), n(4))
	h.SetRelativeFlipX(true)
	want := gamemath.Rect{Left: n(90), Top: n(1), Right: n(98), Bottom: n(4)}
	if got := h.Bounds(); got != want {
		t.Errorf("flipped bounds = %+v, want %+v", got, want)
	}
}

func TestPolygonRotation(t *testing.T) {
	s := newTestSpace(t)
	h := s.NewPolygon(v(0, 0), v(0, 0), v(10, 0), v(0, 10))
	h.SetRelativeAngle(n(90))

	want := []gamemath.Vector{v(0, 0), v(0, -10), v(10, 0)}
	got := h.Vertices()
	if len(got) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
	wantBounds := gamemath.Rect{Left: n(0), Top: n(-10), Right: n(10), Bottom: n(0)}
	if b := h.Bounds(); b != wantBounds {
		t.Errorf("bounds = %+v, want %+v", b, wantBounds)
	}
}

func TestAddChildRejects(t *testing.T) {
	s := newTestSpace(t)
	other := newTestSpace(t)

	root := s.NewPoint(v(0, 0))
	child := s.NewPoint(v(1, 0))
	root.AddChild(child)
	body, _ := s.NewBody(rect(s, 0, 0, 4, 4), nil)

	tests := []struct {
		name   string
		parent *Hitbox
		child  *Hitbox
	}{
		{"nil", root, nil},
		{"self", root, root},
		{"other space", root, other.NewPoint(v(0, 0))},
		{"already parented", s.NewPoint(v(0, 0)), child},
		{"ancestor", child, root},
		{"body locator", root, body.Locator()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.parent.AddChild(tt.child) {
				t.Error("AddChild succeeded")
			}
		})
	}
}

func TestRemoveChildWithRole(t *testing.T) {
	s := newTestSpace(t)
	b, _ := s.NewBody(rect(s, 0, 0, 10, 10), nil)
	ov := s.NewCircle(v(5, 5), n(3))
	if !b.Locator().AddChild(ov) {
		t.Fatal("AddChild failed")
	}
	if ov.Body() != b {
		t.Fatal("child should inherit the body")
	}
	if !b.SetOverlapHitbox(ov) {
		t.Fatal("SetOverlapHitbox failed")
	}
	if b.Locator().RemoveChild(ov) {
		t.Error("removed a hitbox that still serves a role")
	}
	b.SetOverlapHitbox(nil)
	if ov.Body() != nil || ov.Parent() != nil {
		t.Error("hitbox without roles still attached to the body")
	}
	if ov.AbsolutePosition() != v(5, 5) {
		t.Errorf("released hitbox at %v, want its relative position", ov.AbsolutePosition())
	}

	plain := s.NewPoint(v(1, 1))
	b.Locator().AddChild(plain)
	if !b.Locator().RemoveChild(plain) {
		t.Error("RemoveChild failed for a hitbox without roles")
	}
}

func TestClearingOneOfSeveralRolesKeepsHitbox(t *testing.T) {
	s := newTestSpace(t)
	b, _ := s.NewBody(rect(s, 0, 0, 10, 10), nil)
	inner := rect(s, 1, 1, 4, 4)
	b.Locator().AddChild(inner)
	b.SetSolidHitbox(inner)
	b.SetCollisionHitbox(inner)

	b.SetSolidHitbox(nil)

	if inner.Parent() != b.Locator() || inner.Body() != b {
		t.Fatal("hitbox left the tree while it still serves a role")
	}
	if inner.HasRole(RoleSolid) || !inner.HasRole(RoleCollision) {
		t.Errorf("roles = %v", inner.Roles())
	}
	if !b.SetSolidHitbox(inner) || b.SolidHitbox() != inner {
		t.Error("could not give the role back")
	}
}

func TestRoleHitboxMustBelongToBody(t *testing.T) {
	s := newTestSpace(t)
	b, _ := s.NewBody(rect(s, 0, 0, 10, 10), nil)
	if b.SetSolidHitbox(s.NewPoint(v(0, 0))) {
		t.Error("accepted a hitbox outside the body's tree")
	}
}

func TestCompositeBoundsFollowComponents(t *testing.T) {
	s := newTestSpace(t)
	c := s.NewComposite(v(0, 0))
	circle := s.NewCircle(v(20, 0), n(3))
	box := rect(s, 0, 0, 4, 4)
	c.AddComponent(circle)
	c.AddComponent(box)

	want := gamemath.Rect{Left: n(0), Top: n(-3), Right: n(23), Bottom: n(4)}
	if got := c.Bounds(); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}

	circle.Translate(v(10, 0))
	want.Right = n(33)
	if got := c.Bounds(); got != want {
		t.Errorf("after moving a component, bounds = %+v, want %+v", got, want)
	}

	c.RemoveComponent(circle)
	want = gamemath.Rect{Left: n(0), Top: n(0), Right: n(4), Bottom: n(4)}
	if got := c.Bounds(); got != want {
		t.Errorf("after removing a component, bounds = %+v, want %+v", got, want)
	}

	c.Translate(v(5, 5))
	want = gamemath.Rect{Left: n(5), Top: n(5), Right: n(9), Bottom: n(9)}
	if got := c.Bounds(); got != want {
		t.Errorf("after moving the composite, bounds = %+v, want %+v", got, want)
	}
}

func TestSetSurfaces(t *testing.T) {
	s := newTestSpace(t)
	w := newWall(t, s, 0, 0, 10, 10, DirAll)
	h := w.Locator()

	h.SetSurface(DirUp, false)
	if h.Surfaces() != DirLeft|DirRight|DirDown {
		t.Errorf("surfaces = %v", h.Surfaces())
	}
	area := s.cellRangeExclusive(h.Bounds())
	if got := s.collectSolids(area, DirUp); len(got) != 0 {
		t.Errorf("up side still indexed: %d hitboxes", len(got))
	}
	if got := s.collectSolids(area, DirLeft); len(got) != 1 {
		t.Errorf("left side indexed %d times, want 1", len(got))
	}
	h.SetSurface(DirUp, true)
	if got := s.collectSolids(area, DirUp); len(got) != 1 {
		t.Errorf("up side indexed %d times after restoring, want 1", len(got))
	}
}
