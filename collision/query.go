package collision

import (
	"sort"

	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
)

// Filter selects bodies in queries. A nil Filter accepts every body.
type Filter func(b *Body) bool

// Tagged accepts bodies carrying every one of tags.
func Tagged(tags ...string) Filter {
	return func(b *Body) bool {
		for _, t := range tags {
			if !b.HasTag(t) {
				return false
			}
		}
		return true
	}
}

// Not inverts f.
func Not(f Filter) Filter {
	return func(b *Body) bool { return !f.accepts(b) }
}

// And accepts bodies accepted by every filter.
func And(filters ...Filter) Filter {
	return func(b *Body) bool {
		for _, f := range filters {
			if !f.accepts(b) {
				return false
			}
		}
		return true
	}
}

// Except rejects one body.
func Except(skip *Body) Filter {
	return func(b *Body) bool { return b != skip }
}

func (f Filter) accepts(b *Body) bool { return f == nil || f(b) }

// bodiesOf collects the distinct owners of hits that pass keep and f,
// ordered by body id.
func bodiesOf(hits []*Hitbox, f Filter, keep func(h *Hitbox) bool) []*Body {
	var out []*Body
	seen := make(map[*Body]struct{})
	for _, h := range hits {
		b := h.body
		if b == nil {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		if !keep(h) || !f.accepts(b) {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Nearest returns the body whose center is closest to p. Equal distances
// go to the lowest center hitbox id.
func (s *Space) Nearest(p gamemath.Vector, f Filter) *Body {
	s.begin()
	defer s.end()
	return nearestOf(s.collect(s.occupied(), RoleCenter), p, f, -1)
}

// NearestWithin is Nearest limited to centers no further than radius.
func (s *Space) NearestWithin(p gamemath.Vector, radius fixed.F, f Filter) *Body {
	s.begin()
	defer s.end()
	area := gamemath.Rect{Left: p.X - radius, Top: p.Y - radius, Right: p.X + radius, Bottom: p.Y + radius}
	return nearestOf(s.collect(s.cellRangeExclusive(area), RoleCenter), p, f, radius.Mul(radius))
}

// nearestOf scans hits in id order, so the first of several equidistant
// centers wins. limit < 0 means unlimited.
func nearestOf(hits []*Hitbox, p gamemath.Vector, f Filter, limit fixed.F) *Body {
	var (
		best   *Body
		bestSq fixed.F
	)
	for _, h := range hits {
		if h.body == nil || !f.accepts(h.body) {
			continue
		}
		d := p.DistanceSq(h.absPos)
		if limit >= 0 && d > limit {
			continue
		}
		if best == nil || d < bestSq {
			best, bestSq = h.body, d
		}
	}
	return best
}

// WithinRectangle returns bodies whose center lies inside r, edges
// included.
func (s *Space) WithinRectangle(r gamemath.Rect, f Filter) []*Body {
	s.begin()
	defer s.end()
	hits := s.collect(s.cellRangeExclusive(r), RoleCenter)
	return bodiesOf(hits, f, func(h *Hitbox) bool { return r.Contains(h.absPos) })
}

// WithinCircle returns bodies whose center lies within radius of c.
func (s *Space) WithinCircle(c gamemath.Vector, radius fixed.F, f Filter) []*Body {
	s.begin()
	defer s.end()
	area := gamemath.Rect{Left: c.X - radius, Top: c.Y - radius, Right: c.X + radius, Bottom: c.Y + radius}
	rr := radius.Mul(radius)
	hits := s.collect(s.cellRangeExclusive(area), RoleCenter)
	return bodiesOf(hits, f, func(h *Hitbox) bool { return c.DistanceSq(h.absPos) <= rr })
}

// Overlapping returns bodies whose overlap hitbox overlaps h.
func (s *Space) Overlapping(h *Hitbox, f Filter) []*Body {
	s.begin()
	defer s.end()
	hits := s.collect(s.cellRangeExclusive(h.bounds), RoleOverlap)
	return bodiesOf(hits, f, func(o *Hitbox) bool { return Overlaps(h, o) })
}

// IsOverlapping reports whether any overlap hitbox accepted by f overlaps h.
func (s *Space) IsOverlapping(h *Hitbox, f Filter) bool {
	s.begin()
	defer s.end()
	for _, o := range s.collect(s.cellRangeExclusive(h.bounds), RoleOverlap) {
		if o.body != nil && f.accepts(o.body) && Overlaps(h, o) {
			return true
		}
	}
	return false
}

// BoundingBoxesMeet returns bodies whose overlap hitbox's bounding box
// touches h's, without running the exact shape test.
func (s *Space) BoundingBoxesMeet(h *Hitbox, f Filter) []*Body {
	s.begin()
	defer s.end()
	hits := s.collect(s.cellRangeExclusive(h.bounds), RoleOverlap)
	return bodiesOf(hits, f, func(o *Hitbox) bool {
		return (h.body == nil || o.body != h.body) && h.bounds.Meets(o.bounds)
	})
}

// IntersectingSolids returns bodies whose solid hitbox overlaps h.
func (s *Space) IntersectingSolids(h *Hitbox, f Filter) []*Body {
	s.begin()
	defer s.end()
	hits := s.collect(s.cellRangeExclusive(h.bounds), RoleSolid)
	return bodiesOf(hits, f, func(o *Hitbox) bool { return Overlaps(h, o) })
}

// LocatorsMeeting returns bodies whose locator bounds touch r. Renderers
// use it to cull what is off screen.
func (s *Space) LocatorsMeeting(r gamemath.Rect, f Filter) []*Body {
	s.begin()
	defer s.end()
	hits := s.collect(s.cellRangeExclusive(r), RoleLocator)
	return bodiesOf(hits, f, func(h *Hitbox) bool { return r.Meets(h.bounds) })
}

// OverlappingBodies returns bodies whose overlap hitbox overlaps b's.
func (b *Body) OverlappingBodies(f Filter) []*Body {
	if b.overlapBox == nil || !b.added {
		return nil
	}
	return b.space.Overlapping(b.overlapBox, f)
}

// IsOverlappingAny reports whether b's overlap hitbox overlaps any other
// body accepted by f.
func (b *Body) IsOverlappingAny(f Filter) bool {
	if b.overlapBox == nil || !b.added {
		return false
	}
	return b.space.IsOverlapping(b.overlapBox, f)
}
