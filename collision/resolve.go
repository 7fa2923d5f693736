package collision

import (
	"log"
	"sort"

	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
)

// resolution holds the state of one top-level move. Pushed bodies get the
// pusher as their effective leader until the move completes.
type resolution struct {
	space  *Space
	pushed []*Body
}

// candidate is a surface or body that the moving box reaches within the
// requested displacement.
type candidate struct {
	hitbox *Hitbox
	owner  *Body
	// dir is the side of the mover that makes contact.
	dir    Direction
	factor gamemath.Fraction
	// push marks a body e moves out of its way rather than a solid surface.
	push bool
}

// sortCandidates orders by factor, then solids before pushes, then hitbox
// id and side.
func sortCandidates(cs []candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if c := cs[i].factor.Cmp(cs[j].factor); c != 0 {
			return c < 0
		}
		if cs[i].push != cs[j].push {
			return !cs[i].push
		}
		if cs[i].hitbox.id != cs[j].hitbox.id {
			return cs[i].hitbox.id < cs[j].hitbox.id
		}
		return cs[i].dir < cs[j].dir
	})
}

// outcome aggregates the responses applied to one step of movement.
type outcome struct {
	stop     bool
	cancelX  bool
	cancelY  bool
	reflectX bool
	reflectY bool
	// blocked axes lose their leftover but keep their velocity
	blockX bool
	blockY bool
}

func (o *outcome) apply(r Response, dir Direction) {
	switch r {
	case ResponseSlide:
		if dir.Horizontal() {
			o.cancelX = true
		} else {
			o.cancelY = true
		}
	case ResponseStop:
		o.stop = true
	case ResponseBounce:
		if dir.Horizontal() {
			o.reflectX = true
		} else {
			o.reflectY = true
		}
	}
}

func (o *outcome) block(dir Direction) {
	if dir.Horizontal() {
		o.blockX = true
	} else {
		o.blockY = true
	}
}

// movingSides returns the sides of the mover that lead along d.
func movingSides(d gamemath.Vector) []Direction {
	var out []Direction
	switch {
	case d.X > 0:
		out = append(out, DirRight)
	case d.X < 0:
		out = append(out, DirLeft)
	}
	switch {
	case d.Y > 0:
		out = append(out, DirDown)
	case d.Y < 0:
		out = append(out, DirUp)
	}
	return out
}

// sweep finds the fraction of d that box travels before its dir side meets
// the opposite side of o. The boxes must overlap on the other axis at that
// moment, edges excluded.
func sweep(box gamemath.Rect, d gamemath.Vector, o gamemath.Rect, dir Direction) (gamemath.Fraction, bool) {
	var gap, dist fixed.F
	switch dir {
	case DirRight:
		gap, dist = o.Left-box.Right, d.X
	case DirLeft:
		gap, dist = box.Left-o.Right, -d.X
	case DirDown:
		gap, dist = o.Top-box.Bottom, d.Y
	case DirUp:
		gap, dist = box.Top-o.Bottom, -d.Y
	default:
		return gamemath.Fraction{}, false
	}
	if dist <= 0 || gap < 0 || gap > dist {
		return gamemath.Fraction{}, false
	}
	f := gamemath.Fraction{Num: gap, Den: dist}
	if dir.Horizontal() {
		off := f.Of(d.Y)
		if !(box.Top+off < o.Bottom && o.Top < box.Bottom+off) {
			return gamemath.Fraction{}, false
		}
	} else {
		off := f.Of(d.X)
		if !(box.Left+off < o.Right && o.Left < box.Right+off) {
			return gamemath.Fraction{}, false
		}
	}
	return f, true
}

// flush reports whether o sits exactly against the dir side of box.
func flush(box, o gamemath.Rect, dir Direction) bool {
	switch dir {
	case DirRight, DirLeft:
		if dir == DirRight && o.Left != box.Right || dir == DirLeft && o.Right != box.Left {
			return false
		}
		return box.Top < o.Bottom && o.Top < box.Bottom
	case DirDown, DirUp:
		if dir == DirDown && o.Top != box.Bottom || dir == DirUp && o.Bottom != box.Top {
			return false
		}
		return box.Left < o.Right && o.Left < box.Right
	}
	return false
}

// canPush reports whether e moves o out of its way instead of being
// blocked by it. Equal priorities never push each other.
func canPush(e, o *Body) bool {
	return o.added && o.collisionBox != nil && o.priority < e.priority
}

// ignores reports whether e passes through everything o owns.
func ignores(e, o *Body) bool {
	return o == nil || o == e || related(e, o)
}

func (r *resolution) moveWithFollowers(e *Body, d gamemath.Vector, depth int) {
	r.resolve(e, d, depth)
	for _, f := range e.followers {
		r.moveWithFollowers(f, d, depth)
	}
}

// resolve moves e by d, stopping at solid surfaces and pushing lower
// priority bodies, then recurses on whatever movement is left.
func (r *resolution) resolve(e *Body, d gamemath.Vector, depth int) {
	if d.IsZero() {
		return
	}
	s := r.space
	if depth >= s.maxDepth {
		log.Printf("[space] body %d reached resolve depth %d, dropping %v", e.id, depth, d)
		return
	}
	cb := e.collisionBox
	if cb == nil || !e.added {
		e.translate(d)
		return
	}

	box := cb.bounds
	cr := s.cellRangeExclusive(box.Union(box.Translate(d)))
	cutoff := gamemath.FractionOne
	var out outcome

	// Surfaces and pushed bodies are met in travel order, so a push that
	// stops e short hides every surface behind that point.
	cands := append(r.solidCandidates(e, box, d, cr), r.pushCandidates(e, box, d, cr)...)
	sortCandidates(cands)

	pushed := make(map[*Body]struct{})
	for _, c := range cands {
		if cutoff.Less(c.factor) {
			break
		}
		if c.push {
			if _, ok := pushed[c.owner]; ok || (c.factor.Cmp(cutoff) == 0 && !cutoff.IsOne()) {
				continue
			}
			pushed[c.owner] = struct{}{}
			cutoff = r.push(e, box, d, c, cutoff, &out, depth)
			continue
		}
		resp := e.collide(c.owner, c.dir)
		e.record(Contact{Other: c.owner, Hitbox: c.hitbox, Dir: c.dir, Response: resp, Pressing: c.factor.IsZero()})
		if resp == ResponseNone {
			continue
		}
		out.apply(resp, c.dir)
		if c.factor.Less(cutoff) {
			cutoff = c.factor
		}
	}

	travel := cutoff.OfVector(d)
	e.translate(travel)
	leftover := d.Sub(travel)

	vel := e.velocity
	if out.stop {
		vel = gamemath.Zero
		leftover = gamemath.Zero
	}
	if out.cancelX {
		vel.X, leftover.X = 0, 0
	}
	if out.cancelY {
		vel.Y, leftover.Y = 0, 0
	}
	if out.reflectX {
		vel.X, leftover.X = -vel.X, -leftover.X
	}
	if out.reflectY {
		vel.Y, leftover.Y = -vel.Y, -leftover.Y
	}
	if out.blockX {
		leftover.X = 0
	}
	if out.blockY {
		leftover.Y = 0
	}
	e.velocity = vel

	if !leftover.IsZero() {
		r.resolve(e, leftover, depth+1)
	}
}

// solidCandidates collects the solid surfaces facing e's movement.
func (r *resolution) solidCandidates(e *Body, box gamemath.Rect, d gamemath.Vector, cr cellRange) []candidate {
	var out []candidate
	for _, dir := range movingSides(d) {
		for _, h := range r.space.collectSolids(cr, dir.Opposite()) {
			o := h.body
			if ignores(e, o) || canPush(e, o) {
				continue
			}
			if f, ok := sweep(box, d, h.bounds, dir); ok {
				out = append(out, candidate{hitbox: h, owner: o, dir: dir, factor: f})
			}
		}
	}
	return out
}

// pushCandidates collects the lower priority bodies in e's path.
func (r *resolution) pushCandidates(e *Body, box gamemath.Rect, d gamemath.Vector, cr cellRange) []candidate {
	var out []candidate
	for _, h := range r.space.collect(cr, RoleCollision) {
		o := h.body
		if ignores(e, o) || h != o.collisionBox || !canPush(e, o) {
			continue
		}
		for _, dir := range movingSides(d) {
			if f, ok := sweep(box, d, h.bounds, dir); ok {
				out = append(out, candidate{hitbox: h, owner: o, dir: dir, factor: f, push: true})
			}
		}
	}
	return out
}

// push moves c's body by the part of d that e has not consumed when
// reaching it, then caps e's travel at where that body ended up.
func (r *resolution) push(e *Body, box gamemath.Rect, d gamemath.Vector, c candidate, cutoff gamemath.Fraction, out *outcome, depth int) gamemath.Fraction {
	o := c.owner
	in := c.dir.Opposite()
	resp := o.collide(e, in)
	o.applyResponse(resp, in)
	o.pressedFrom |= in
	o.record(Contact{Other: e, Hitbox: e.collisionBox, Dir: in, Response: resp, Pushed: true})
	e.record(Contact{Other: o, Hitbox: c.hitbox, Dir: c.dir, Response: resp, Pushed: true})

	o.effLeader = e
	r.pushed = append(r.pushed, o)
	r.moveWithFollowers(o, c.factor.Complement().OfVector(d), depth+1)

	if f, capped := capAt(box, d, c.hitbox.bounds, c.dir); capped {
		out.block(c.dir)
		if f.Less(cutoff) {
			cutoff = f
		}
	}
	return cutoff
}

// capAt returns the fraction of d box may travel along dir before meeting
// o, when that is less than all of it.
func capAt(box gamemath.Rect, d gamemath.Vector, o gamemath.Rect, dir Direction) (gamemath.Fraction, bool) {
	var gap, dist fixed.F
	switch dir {
	case DirRight:
		gap, dist = o.Left-box.Right, d.X
	case DirLeft:
		gap, dist = box.Left-o.Right, -d.X
	case DirDown:
		gap, dist = o.Top-box.Bottom, d.Y
	case DirUp:
		gap, dist = box.Top-o.Bottom, -d.Y
	}
	if dist <= 0 || gap >= dist {
		return gamemath.FractionOne, false
	}
	return gamemath.NewFraction(gap, dist), true
}

// applyResponse applies a response to the velocity component along dir.
func (b *Body) applyResponse(resp Response, dir Direction) {
	switch resp {
	case ResponseSlide:
		if dir.Horizontal() {
			b.velocity.X = 0
		} else {
			b.velocity.Y = 0
		}
	case ResponseStop:
		b.velocity = gamemath.Zero
	case ResponseBounce:
		if dir.Horizontal() {
			b.velocity.X = -b.velocity.X
		} else {
			b.velocity.Y = -b.velocity.Y
		}
	}
}

// press handles a body that is not moving but presses toward its pressing
// angle. Surfaces flush against the pressed sides get a collision.
func (r *resolution) press(e *Body) {
	cb := e.collisionBox
	if cb == nil || !e.added {
		return
	}
	u := gamemath.FromAngle(e.pressAngle)
	box := cb.bounds
	cr := r.space.cellRangeExclusive(box)
	for _, dir := range movingSides(u) {
		for _, h := range r.space.collectSolids(cr, dir.Opposite()) {
			o := h.body
			if ignores(e, o) || canPush(e, o) || !flush(box, h.bounds, dir) {
				continue
			}
			resp := e.collide(o, dir)
			e.record(Contact{Other: o, Hitbox: h, Dir: dir, Response: resp, Pressing: true})
			e.applyResponse(resp, dir)
		}
	}
}

// restore puts back the real leaders of every pushed body.
func (r *resolution) restore() {
	for _, b := range r.pushed {
		b.effLeader = b.leader
	}
	r.pushed = r.pushed[:0]
}
