// Package gamemath holds the value types shared by the collision core and
// the systems around it. Everything here is fixed point.
package gamemath

import (
	"math"

	"github.com/automoto/hitgrid/shared/fixed"
)

// Vector is a 2D point or displacement. x grows right, y grows down.
type Vector struct {
	X, Y fixed.F
}

var Zero Vector

// V builds a vector from whole units.
func V(x, y int) Vector {
	return Vector{fixed.FromInt(x), fixed.FromInt(y)}
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Neg() Vector         { return Vector{-v.X, -v.Y} }
func (v Vector) IsZero() bool        { return v.X == 0 && v.Y == 0 }

func (v Vector) Scale(s fixed.F) Vector {
	return Vector{v.X.Mul(s), v.Y.Mul(s)}
}

func (v Vector) Dot(o Vector) fixed.F {
	return v.X.Mul(o.X) + v.Y.Mul(o.Y)
}

// Cross is the z component of the 3D cross product.
func (v Vector) Cross(o Vector) fixed.F {
	return v.X.Mul(o.Y) - v.Y.Mul(o.X)
}

func (v Vector) MagnitudeSq() fixed.F { return v.Dot(v) }
func (v Vector) Magnitude() fixed.F   { return v.MagnitudeSq().Sqrt() }

func (v Vector) DistanceSq(o Vector) fixed.F { return o.Sub(v).MagnitudeSq() }
func (v Vector) Distance(o Vector) fixed.F   { return o.Sub(v).Magnitude() }

// Normalize returns a vector of length one in the same direction, or zero.
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return Zero
	}
	return Vector{v.X.Div(m), v.Y.Div(m)}
}

// FlipX mirrors across the vertical axis.
func (v Vector) FlipX() Vector { return Vector{-v.X, v.Y} }

// FlipY mirrors across the horizontal axis.
func (v Vector) FlipY() Vector { return Vector{v.X, -v.Y} }

// Flip applies the requested mirrors.
func (v Vector) Flip(x, y bool) Vector {
	if x {
		v.X = -v.X
	}
	if y {
		v.Y = -v.Y
	}
	return v
}

// FromAngle returns the unit vector for an angle in degrees. 0 points
// right and 90 points up the screen.
func FromAngle(deg fixed.F) Vector {
	c, s := fixed.CosSin(deg)
	return Vector{c, -s}
}

// Rotate turns v counter-clockwise on screen by the angle whose unit vector
// is u.
func (v Vector) Rotate(u Vector) Vector {
	return Vector{
		X: v.X.Mul(u.X) - v.Y.Mul(u.Y),
		Y: v.X.Mul(u.Y) + v.Y.Mul(u.X),
	}
}

// Angle returns the direction of v in degrees, normalized to [0, 360).
func (v Vector) Angle() fixed.F {
	if v.IsZero() {
		return 0
	}
	switch {
	case v.Y == 0 && v.X > 0:
		return 0
	case v.X == 0 && v.Y < 0:
		return 90 * fixed.One
	case v.Y == 0 && v.X < 0:
		return 180 * fixed.One
	case v.X == 0 && v.Y > 0:
		return 270 * fixed.One
	}
	rad := math.Atan2(-v.Y.Float(), v.X.Float())
	return fixed.NormalizeAngle(fixed.FromFloat(rad * 180 / math.Pi))
}

// AngleTo returns the direction from v to o in degrees.
func (v Vector) AngleTo(o Vector) fixed.F {
	return o.Sub(v).Angle()
}

// Lerp interpolates between v and o by the fraction f.
func (v Vector) Lerp(o Vector, f Fraction) Vector {
	return v.Add(f.OfVector(o.Sub(v)))
}

func (v Vector) String() string {
	return "(" + v.X.String() + ", " + v.Y.String() + ")"
}
