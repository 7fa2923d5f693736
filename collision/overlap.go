package collision

import (
	"github.com/automoto/hitgrid/shared/fixed"
	"github.com/automoto/hitgrid/shared/gamemath"
)

// shape is the absolute geometry of a hitbox as the overlap tests see it.
// Degenerate polygons are reported as the point or segment they collapse to.
type shape struct {
	kind   Kind
	pos    gamemath.Vector
	radius fixed.F
	a, b   gamemath.Vector
	verts  []gamemath.Vector
	bounds gamemath.Rect
	parts  []*Hitbox
}

func (h *Hitbox) shape() shape {
	s := shape{kind: h.kind, pos: h.absPos, bounds: h.bounds}
	switch h.kind {
	case KindCircle:
		s.radius = h.radius
	case KindLine:
		s.a, s.b = h.absVerts[0], h.absVerts[1]
	case KindPolygon:
		switch len(h.absVerts) {
		case 0:
			s.kind = KindPoint
		case 1:
			s.kind = KindPoint
			s.pos = h.absVerts[0]
		case 2:
			s.kind = KindLine
			s.a, s.b = h.absVerts[0], h.absVerts[1]
		default:
			s.verts = h.absVerts
		}
	case KindComposite:
		for _, c := range h.children {
			if c.component {
				s.parts = append(s.parts, c)
			}
		}
	}
	return s
}

type overlapFunc func(a, b *shape) bool

// overlapMatrix is indexed by the kinds of both operands. Every entry has
// a mirrored twin so the table is symmetric.
var overlapMatrix [numKinds][numKinds]overlapFunc

func init() {
	pair := func(k1, k2 Kind, f overlapFunc) {
		overlapMatrix[k1][k2] = f
		overlapMatrix[k2][k1] = func(a, b *shape) bool { return f(b, a) }
	}
	pair(KindCircle, KindCircle, circleCircle)
	pair(KindCircle, KindLine, circleLine)
	pair(KindCircle, KindPoint, circlePoint)
	pair(KindCircle, KindPolygon, circlePolygon)
	pair(KindCircle, KindRectangle, circleRectangle)
	pair(KindLine, KindLine, lineLine)
	pair(KindLine, KindPoint, linePoint)
	pair(KindLine, KindPolygon, linePolygon)
	pair(KindLine, KindRectangle, lineRectangle)
	pair(KindPoint, KindPoint, pointPoint)
	pair(KindPoint, KindPolygon, pointPolygon)
	pair(KindPoint, KindRectangle, pointRectangle)
	pair(KindPolygon, KindPolygon, polygonPolygon)
	pair(KindPolygon, KindRectangle, polygonRectangle)
	pair(KindRectangle, KindRectangle, rectangleRectangle)
	for k := Kind(0); k < numKinds; k++ {
		pair(KindComposite, k, compositeAny)
	}
}

// Overlaps reports whether two hitboxes share any point. Hitboxes owned by
// the same body never overlap.
func Overlaps(a, b *Hitbox) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if a.body != nil && a.body == b.body {
		return false
	}
	sa, sb := a.shape(), b.shape()
	return overlapShapes(&sa, &sb)
}

// Overlaps is the method form of the package function.
func (h *Hitbox) Overlaps(o *Hitbox) bool { return Overlaps(h, o) }

func overlapShapes(a, b *shape) bool {
	if !a.bounds.Meets(b.bounds) {
		return false
	}
	return overlapMatrix[a.kind][b.kind](a, b)
}

func compositeAny(a, b *shape) bool {
	for _, c := range a.parts {
		cs := c.shape()
		if overlapShapes(&cs, b) {
			return true
		}
	}
	return false
}

// --- primitive pairs ---

func circleCircle(a, b *shape) bool {
	r := a.radius + b.radius
	return a.pos.DistanceSq(b.pos) < r.Mul(r)
}

func circlePoint(a, b *shape) bool {
	return a.pos.DistanceSq(b.pos) <= a.radius.Mul(a.radius)
}

func circleLine(a, b *shape) bool {
	return circleSegment(a.pos, a.radius, b.a, b.b)
}

func circlePolygon(a, b *shape) bool {
	if pointInPolygon(a.pos, b.verts) {
		return true
	}
	n := len(b.verts)
	for i := range b.verts {
		if circleSegment(a.pos, a.radius, b.verts[i], b.verts[(i+1)%n]) {
			return true
		}
	}
	return false
}

func circleRectangle(a, b *shape) bool {
	if b.bounds.Contains(a.pos) {
		return true
	}
	for _, side := range rectSides(b.bounds) {
		if circleSegment(a.pos, a.radius, side[0], side[1]) {
			return true
		}
	}
	return false
}

func lineLine(a, b *shape) bool {
	return segmentsIntersect(a.a, a.b, b.a, b.b)
}

func linePoint(a, b *shape) bool {
	return pointOnSegment(b.pos, a.a, a.b)
}

func linePolygon(a, b *shape) bool {
	if pointInPolygon(a.a, b.verts) || pointInPolygon(a.b, b.verts) {
		return true
	}
	n := len(b.verts)
	for i := range b.verts {
		if segmentsIntersect(a.a, a.b, b.verts[i], b.verts[(i+1)%n]) {
			return true
		}
	}
	return false
}

func lineRectangle(a, b *shape) bool {
	if b.bounds.Contains(a.a) || b.bounds.Contains(a.b) {
		return true
	}
	return segmentCrossesRect(a.a, a.b, b.bounds)
}

// pointPoint only runs once the bounding boxes met, which for two points
// means they coincide.
func pointPoint(a, b *shape) bool { return true }

// pointPolygon is closed like pointRectangle: a point on an edge is inside.
func pointPolygon(a, b *shape) bool {
	return onPolygonEdge(a.pos, b.verts) || pointInPolygon(a.pos, b.verts)
}

func onPolygonEdge(p gamemath.Vector, verts []gamemath.Vector) bool {
	for i := range verts {
		if pointOnSegment(p, verts[i], verts[(i+1)%len(verts)]) {
			return true
		}
	}
	return false
}

func pointRectangle(a, b *shape) bool {
	return b.bounds.Contains(a.pos)
}

func polygonPolygon(a, b *shape) bool {
	for _, v := range a.verts {
		if pointInPolygon(v, b.verts) {
			return true
		}
	}
	for _, v := range b.verts {
		if pointInPolygon(v, a.verts) {
			return true
		}
	}
	na, nb := len(a.verts), len(b.verts)
	for i := range a.verts {
		p1, p2 := a.verts[i], a.verts[(i+1)%na]
		for j := range b.verts {
			if segmentsIntersect(p1, p2, b.verts[j], b.verts[(j+1)%nb]) {
				return true
			}
		}
	}
	return false
}

func polygonRectangle(a, b *shape) bool {
	for _, v := range a.verts {
		if b.bounds.Contains(v) {
			return true
		}
	}
	for _, c := range rectCorners(b.bounds) {
		if pointInPolygon(c, a.verts) {
			return true
		}
	}
	n := len(a.verts)
	for i := range a.verts {
		if segmentCrossesRect(a.verts[i], a.verts[(i+1)%n], b.bounds) {
			return true
		}
	}
	return false
}

// rectangleRectangle uses open intervals: rectangles that only share an
// edge do not overlap.
func rectangleRectangle(a, b *shape) bool {
	return a.bounds.Overlaps(b.bounds)
}

// --- geometry helpers ---

func rectCorners(r gamemath.Rect) [4]gamemath.Vector {
	return [4]gamemath.Vector{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}

func rectSides(r gamemath.Rect) [4][2]gamemath.Vector {
	c := rectCorners(r)
	return [4][2]gamemath.Vector{{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]}}
}

// segmentCrossesRect tests a segment against the four sides and both
// diagonals of r. The diagonals catch segments passing exactly through
// opposite corners.
func segmentCrossesRect(p1, p2 gamemath.Vector, r gamemath.Rect) bool {
	for _, side := range rectSides(r) {
		if segmentsIntersect(p1, p2, side[0], side[1]) {
			return true
		}
	}
	c := rectCorners(r)
	return segmentsIntersect(p1, p2, c[0], c[2]) || segmentsIntersect(p1, p2, c[1], c[3])
}

// segmentsIntersect is the parametric cross-product test. Only the open
// interval (0,1) counts on both segments, so shared endpoints of adjacent
// edges are not reported twice. Parallel segments never intersect.
func segmentsIntersect(p1, p2, q1, q2 gamemath.Vector) bool {
	r := p2.Sub(p1)
	s := q2.Sub(q1)
	if r.IsZero() {
		return pointOnSegment(p1, q1, q2)
	}
	if s.IsZero() {
		return pointOnSegment(q1, p1, p2)
	}
	denom := r.Cross(s)
	if denom == 0 {
		return false
	}
	qp := q1.Sub(p1)
	t := qp.Cross(s)
	u := qp.Cross(r)
	if denom < 0 {
		denom, t, u = -denom, -t, -u
	}
	return t > 0 && t < denom && u > 0 && u < denom
}

// pointOnSegment includes the endpoints.
func pointOnSegment(p, a, b gamemath.Vector) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	if ab.IsZero() {
		return ap.IsZero()
	}
	if ab.Cross(ap) != 0 {
		return false
	}
	dot := ap.Dot(ab)
	return dot >= 0 && dot <= ab.MagnitudeSq()
}

// pointInPolygon casts a ray from p to one unit left of the leftmost vertex
// and counts edge crossings. Vertices are treated as lying just above the
// ray so a crossing through a vertex is counted once. Points on an edge land
// on either side; callers that need a closed test check the edges first.
func pointInPolygon(p gamemath.Vector, verts []gamemath.Vector) bool {
	n := len(verts)
	if n < 3 {
		return false
	}
	minX := verts[0].X
	for _, v := range verts[1:] {
		minX = fixed.Min(minX, v.X)
	}
	if p.X < minX {
		return false
	}
	inside := false
	for i := range verts {
		a, b := verts[i], verts[(i+1)%n]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// crossing x < p.X  <=>  (p.X-a.X)*(b.Y-a.Y) > (p.Y-a.Y)*(b.X-a.X), sign-adjusted
		cmp := fixed.CmpProducts(p.X-a.X, b.Y-a.Y, p.Y-a.Y, b.X-a.X)
		if b.Y < a.Y {
			cmp = -cmp
		}
		if cmp > 0 {
			inside = !inside
		}
	}
	return inside
}

// circleSegment reports whether the segment a-b touches the circle. An
// endpoint strictly inside counts, as does a closest approach within the
// radius somewhere strictly between the endpoints.
func circleSegment(c gamemath.Vector, r fixed.F, a, b gamemath.Vector) bool {
	rr := r.Mul(r)
	if c.DistanceSq(a) < rr || c.DistanceSq(b) < rr {
		return true
	}
	d := b.Sub(a)
	dd := d.MagnitudeSq()
	if dd == 0 {
		return false
	}
	t := c.Sub(a).Dot(d)
	if t <= 0 || t >= dd {
		return false
	}
	closest := a.Add(gamemath.Vector{X: fixed.MulDiv(d.X, t, dd), Y: fixed.MulDiv(d.Y, t, dd)})
	return c.DistanceSq(closest) <= rr
}
