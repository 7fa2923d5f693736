package gamemath

import "github.com/automoto/hitgrid/shared/fixed"

// Rect is an axis-aligned box given by its edges.
type Rect struct {
	Left, Top, Right, Bottom fixed.F
}

// RectFrom builds a rectangle from a position and a size.
func RectFrom(x, y, w, h fixed.F) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Width() fixed.F  { return r.Right - r.Left }
func (r Rect) Height() fixed.F { return r.Bottom - r.Top }

func (r Rect) Center() Vector {
	return Vector{(r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2}
}

// Valid reports whether the edges are not inverted.
func (r Rect) Valid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Meets reports whether the two boxes touch or overlap, edges included.
func (r Rect) Meets(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right &&
		r.Top <= o.Bottom && o.Top <= r.Bottom
}

// Overlaps reports whether the two boxes share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right &&
		r.Top < o.Bottom && o.Top < r.Bottom
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Union returns the smallest rectangle holding both.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   fixed.Min(r.Left, o.Left),
		Top:    fixed.Min(r.Top, o.Top),
		Right:  fixed.Max(r.Right, o.Right),
		Bottom: fixed.Max(r.Bottom, o.Bottom),
	}
}

// Translate moves the rectangle by d.
func (r Rect) Translate(d Vector) Rect {
	return Rect{r.Left + d.X, r.Top + d.Y, r.Right + d.X, r.Bottom + d.Y}
}
