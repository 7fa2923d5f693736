package gamemath

import "github.com/automoto/hitgrid/shared/fixed"

// Fraction is an exact ratio Num/Den with 0 <= Num <= Den and Den > 0.
// Collision factors are kept as fractions so that ordering them never
// depends on rounding.
type Fraction struct {
	Num, Den fixed.F
}

var (
	FractionZero = Fraction{0, 1}
	FractionOne  = Fraction{1, 1}
)

// NewFraction clamps num/den into [0, 1]. A non-positive denominator
// yields one.
func NewFraction(num, den fixed.F) Fraction {
	if den <= 0 {
		return FractionOne
	}
	if num <= 0 {
		return Fraction{0, den}
	}
	if num >= den {
		return Fraction{den, den}
	}
	return Fraction{num, den}
}

func (f Fraction) IsZero() bool { return f.Num == 0 }
func (f Fraction) IsOne() bool  { return f.Num == f.Den }

// Cmp compares two fractions exactly.
func (f Fraction) Cmp(o Fraction) int {
	return fixed.CmpProducts(f.Num, o.Den, o.Num, f.Den)
}

func (f Fraction) Less(o Fraction) bool { return f.Cmp(o) < 0 }

// Of scales v by the fraction.
func (f Fraction) Of(v fixed.F) fixed.F {
	if f.Num == f.Den {
		return v
	}
	return fixed.MulDiv(v, f.Num, f.Den)
}

// OfVector scales both components.
func (f Fraction) OfVector(v Vector) Vector {
	return Vector{f.Of(v.X), f.Of(v.Y)}
}

// Complement returns 1 - f.
func (f Fraction) Complement() Fraction {
	return Fraction{f.Den - f.Num, f.Den}
}

func (f Fraction) Float() float64 {
	return f.Num.Float() / f.Den.Float()
}
