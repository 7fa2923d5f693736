// Package fixed implements the deterministic Q47.16 number used for every
// coordinate, extent and comparison in the collision world.
package fixed

import (
	"math"
	"math/bits"
	"strconv"
)

// F is a signed Q47.16 fixed-point value.
type F int64

// Q47.16 constants
const (
	Shift       = 16
	One   F     = 1 << Shift
	Half  F     = One >> 1
	Mask  int64 = int64(One) - 1

	MaxValue F = math.MaxInt64
	MinValue F = math.MinInt64
)

// fullTurn is 360 degrees in fixed point.
const fullTurn = 360 * One

// --- Conversion ---

func FromInt(i int) F { return F(int64(i) << Shift) }

// FromFloat rounds f to the nearest representable value.
func FromFloat(f float64) F { return F(math.Round(f * float64(One))) }

// FromRatio returns num/den without going through floating point.
func FromRatio(num, den int) F { return FromInt(num).Div(FromInt(den)) }

func (a F) Float() float64 { return float64(a) / float64(One) }

// Int truncates toward negative infinity.
func (a F) Int() int { return int(int64(a) >> Shift) }

func (a F) String() string {
	return strconv.FormatFloat(a.Float(), 'f', -1, 64)
}

// --- Arithmetic ---

// Mul multiplies using a 128-bit intermediate. The result is truncated
// toward zero.
func (a F) Mul(b F) F {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := absU(int64(a)), absU(int64(b))

	hi, lo := bits.Mul64(ua, ub)
	// Q47.16 * Q47.16 = Q94.32, shift right 16 for Q47.16
	if hi>>(Shift-1) != 0 {
		return saturate(negative)
	}
	result := int64((hi << (64 - Shift)) | (lo >> Shift))

	if negative {
		return F(-result)
	}
	return F(result)
}

// Div divides using a 128-bit intermediate. Division by zero returns zero;
// quotients outside the int64 range saturate.
func (a F) Div(b F) F {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := absU(int64(a)), absU(int64(b))

	// a << 16 as 128-bit
	hi := ua >> (64 - Shift)
	lo := ua << Shift
	if hi >= ub {
		return saturate(negative)
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		return saturate(negative)
	}
	if negative {
		return F(-int64(quo))
	}
	return F(quo)
}

// MulDiv computes (a * b) / c on raw values with a 128-bit intermediate.
// It is exact up to the final truncation toward zero, which makes it the
// right tool for scaling a value by a ratio of two other values.
func MulDiv(a, b, c F) F {
	if c == 0 {
		return 0
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	ua, ub, uc := absU(int64(a)), absU(int64(b)), absU(int64(c))

	hi, lo := bits.Mul64(ua, ub)
	if hi >= uc {
		return saturate(neg)
	}
	q, _ := bits.Div64(hi, lo, uc)
	if q > math.MaxInt64 {
		return saturate(neg)
	}
	if neg {
		return F(-int64(q))
	}
	return F(q)
}

// CmpProducts compares a*b with c*d exactly and returns -1, 0 or 1.
func CmpProducts(a, b, c, d F) int {
	h1, l1 := mul128(int64(a), int64(b))
	h2, l2 := mul128(int64(c), int64(d))
	switch {
	case h1 < h2:
		return -1
	case h1 > h2:
		return 1
	case l1 < l2:
		return -1
	case l1 > l2:
		return 1
	}
	return 0
}

// Sqrt returns the square root of a, or zero for non-positive values.
func (a F) Sqrt() F {
	if a <= 0 {
		return 0
	}
	u := uint64(a)
	if u < 1<<(63-Shift) {
		return F(isqrt(u << Shift))
	}
	// Large values lose the low bits of precision.
	return F(isqrt(u) << (Shift / 2))
}

func (a F) Abs() F {
	if a < 0 {
		return -a
	}
	return a
}

// Sign returns -1, 0 or 1.
func (a F) Sign() int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

func Min(a, b F) F {
	if a < b {
		return a
	}
	return b
}

func Max(a, b F) F {
	if a > b {
		return a
	}
	return b
}

// Clamp limits a to [lo, hi].
func Clamp(a, lo, hi F) F {
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}

// FloorDiv returns floor(a / b) as an integer. b must be positive.
func FloorDiv(a, b F) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return int(q)
}

// CeilDiv returns ceil(a / b) as an integer. b must be positive.
func CeilDiv(a, b F) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return int(q)
}

// --- Angles ---

// NormalizeAngle wraps degrees to [0, 360).
func NormalizeAngle(deg F) F {
	r := deg % fullTurn
	if r < 0 {
		r += fullTurn
	}
	return r
}

// CosSin returns the cosine and sine of an angle in degrees. Multiples of
// 90 degrees are exact; other angles go through float64 once.
func CosSin(deg F) (cos, sin F) {
	deg = NormalizeAngle(deg)
	switch deg {
	case 0:
		return One, 0
	case 90 * One:
		return 0, One
	case 180 * One:
		return -One, 0
	case 270 * One:
		return 0, -One
	}
	rad := deg.Float() * math.Pi / 180
	return FromFloat(math.Cos(rad)), FromFloat(math.Sin(rad))
}

// IsRightAngle reports whether deg is a multiple of 90 degrees.
func IsRightAngle(deg F) bool {
	return NormalizeAngle(deg)%(90*One) == 0
}

// --- Helpers ---

func absU(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

func saturate(negative bool) F {
	if negative {
		return MinValue
	}
	return MaxValue
}

// mul128 returns the signed 128-bit product of a and b as (hi, lo).
func mul128(a, b int64) (int64, uint64) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	h := int64(hi)
	if a < 0 {
		h -= b
	}
	if b < 0 {
		h -= a
	}
	return h, lo
}

// isqrt returns floor(sqrt(n)) digit by digit.
func isqrt(n uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}
