package collision

import (
	"testing"

	"github.com/automoto/hitgrid/shared/fixed"
)

func TestRemoveDuringTickIsDeferred(t *testing.T) {
	s := newTestSpace(t)
	wall := newWall(t, s, 12, -10, 10, 30, DirAll)

	var (
		calls        int
		busy, stayed bool
	)
	mover := newMover(t, s, 0, 0, 10, 10, 1, ColliderFunc(func(self, other *Body, dir Direction) Response {
		calls++
		busy = s.Busy()
		s.Remove(other)
		stayed = s.Contains(other)
		return ResponseSlide
	}))
	mover.SetVelocity(v(5, 0))

	s.Tick(fixed.One)

	if calls != 1 || !busy || !stayed {
		t.Errorf("calls = %d, busy = %v, stayed = %v", calls, busy, stayed)
	}
	if s.Contains(wall) || s.Len() != 1 {
		t.Error("wall not removed after the tick")
	}
	if mover.Position() != v(2, 0) {
		t.Errorf("mover at %v, want stopped at the wall", mover.Position())
	}

	s.Tick(fixed.One)
	if mover.Position() != v(2, 0) {
		t.Errorf("mover at %v, slide should have cleared its velocity", mover.Position())
	}
}

func TestLocatorAndRoleChangesDuringTickAreDeferred(t *testing.T) {
	s := newTestSpace(t)
	wall := newWall(t, s, 12, -10, 10, 30, DirAll)
	replacement := rect(s, 0, 0, 4, 4)

	var calls int
	var swapped, dropped bool
	mover := newMover(t, s, 0, 0, 10, 10, 1, ColliderFunc(func(self, other *Body, dir Direction) Response {
		calls++
		old := self.Locator()
		if !self.SetLocator(replacement) {
			t.Error("SetLocator rejected a free hitbox")
		}
		swapped = self.Locator() != old
		if !other.SetSolidHitbox(nil) {
			t.Error("SetSolidHitbox(nil) failed")
		}
		dropped = other.SolidHitbox() == nil
		return ResponseSlide
	}))
	oldLocator := mover.Locator()
	mover.SetVelocity(v(5, 0))

	s.Tick(fixed.One)

	if calls != 1 || swapped || dropped {
		t.Errorf("calls = %d, swapped = %v, dropped = %v; changes applied mid-tick", calls, swapped, dropped)
	}
	if mover.Locator() != replacement || replacement.Body() != mover || oldLocator.Body() != nil {
		t.Error("locator not swapped after the tick")
	}
	if mover.CollisionHitbox() != nil || !s.Contains(mover) {
		t.Error("swap should release the old roles and keep the body indexed")
	}
	if wall.SolidHitbox() != nil || wall.Locator().HasRole(RoleSolid) {
		t.Error("solid role not cleared after the tick")
	}
}

func TestAddDuringQueryIsDeferred(t *testing.T) {
	s := newTestSpace(t)
	b, _ := s.NewBody(s.NewPoint(v(0, 0)), nil)

	s.begin()
	s.Add(b)
	if s.Contains(b) {
		t.Error("Add applied while busy")
	}
	s.end()
	if !s.Contains(b) {
		t.Error("Add not applied once idle")
	}
}

func TestDeferRunsInOrder(t *testing.T) {
	s := newTestSpace(t)
	var got []int
	s.begin()
	s.begin()
	s.Defer(func() { got = append(got, 1) })
	s.Defer(func() { got = append(got, 2) })
	s.end()
	if len(got) != 0 {
		t.Fatal("ran before the outermost scan ended")
	}
	s.end()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("got %v", got)
	}
	s.Defer(func() { got = append(got, 3) })
	if len(got) != 3 {
		t.Error("Defer while idle should run at once")
	}
}

func TestRemoveDetachesLeader(t *testing.T) {
	s := newTestSpace(t)
	leader := newMover(t, s, 0, 0, 10, 10, 0, nil)
	follower := newMover(t, s, 20, 0, 4, 4, 0, nil)
	follower.SetLeader(leader)

	s.Remove(leader)

	if follower.Leader() != nil || len(leader.Followers()) != 0 {
		t.Error("leader link survived removal")
	}
}

type hooked struct {
	before, after int
}

func (h *hooked) Collide(self, other *Body, dir Direction) Response { return ResponseSlide }

func (h *hooked) BeforeMovement(b *Body) {
	h.before++
	b.SetVelocity(v(3, 0))
}

func (h *hooked) AfterMovement(b *Body) {
	h.after++
}

func TestMovementHooks(t *testing.T) {
	s := newTestSpace(t)
	h := &hooked{}
	b := newMover(t, s, 0, 0, 10, 10, 1, h)

	s.Tick(fixed.One)
	s.Tick(fixed.One)

	if h.before != 2 || h.after != 2 {
		t.Errorf("hooks ran %d/%d times, want 2/2", h.before, h.after)
	}
	if b.Position() != v(6, 0) {
		t.Errorf("position = %v, want (6, 0)", b.Position())
	}
}

func TestTickOrderByPriority(t *testing.T) {
	s := newTestSpace(t)
	var order []uint64
	low := newMover(t, s, 0, 0, 4, 4, 1, nil)
	high := newMover(t, s, 100, 0, 4, 4, 5, nil)

	for _, b := range []*Body{low, high} {
		b.SetCollider(orderHook{id: b.ID(), order: &order})
	}
	s.Tick(fixed.One)

	if len(order) != 2 || order[0] != high.ID() || order[1] != low.ID() {
		t.Errorf("before-movement order = %v, want high priority first", order)
	}
}

type orderHook struct {
	id    uint64
	order *[]uint64
}

func (o orderHook) Collide(self, other *Body, dir Direction) Response { return ResponseSlide }
func (o orderHook) BeforeMovement(b *Body)                            { *o.order = append(*o.order, o.id) }
func (o orderHook) AfterMovement(b *Body)                             {}
