package collision

import (
	"sort"

	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
)

// Tick runs one resolve pass. Bodies move by (velocity + step) scaled by
// timeFactor, highest priority first and by id within a priority. The
// per-tick output of every body is reset before anything moves.
func (s *Space) Tick(timeFactor fixed.F) {
	s.begin()
	defer s.end()

	bodies := s.Bodies()
	sort.SliceStable(bodies, func(i, j int) bool { return bodies[i].priority > bodies[j].priority })

	for _, b := range bodies {
		b.resetTick()
	}
	for _, b := range bodies {
		if hooks, ok := b.collider.(MovementHooks); ok {
			hooks.BeforeMovement(b)
		}
	}
	for _, b := range bodies {
		if !b.added {
			continue
		}
		d := b.velocity.Add(b.step).Scale(timeFactor)
		b.step = gamemath.Zero
		s.moveTop(b, d)
	}
	for _, b := range bodies {
		if hooks, ok := b.collider.(MovementHooks); ok {
			hooks.AfterMovement(b)
		}
	}
}

// Move resolves a single displacement for b outside of Tick and returns
// how far b actually moved.
func (s *Space) Move(b *Body, d gamemath.Vector) gamemath.Vector {
	if b == nil || b.space != s {
		return gamemath.Zero
	}
	s.begin()
	defer s.end()

	start := b.Position()
	s.moveTop(b, d)
	return b.Position().Sub(start)
}

func (s *Space) moveTop(b *Body, d gamemath.Vector) {
	r := resolution{space: s}
	if d.IsZero() {
		if b.pressing {
			r.press(b)
		}
		return
	}
	r.moveWithFollowers(b, d, 0)
	r.restore()
}
