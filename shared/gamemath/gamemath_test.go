package gamemath

import (
	"testing"

	"github.com/automoto/hitgrid/shared/fixed"
)

func TestFromAngleAndRotate(t *testing.T) {
	tests := []struct {
		deg  int
		want Vector
	}{
		{0, V(1, 0)},
		{90, V(0, -1)},
		{180, V(-1, 0)},
		{270, V(0, 1)},
		{-90, V(0, 1)},
	}
	for _, tt := range tests {
		if got := FromAngle(fixed.FromInt(tt.deg)); got != tt.want {
			t.Errorf("FromAngle(%d) = %v, want %v", tt.deg, got, tt.want)
		}
	}

	if got := V(5, 0).Rotate(FromAngle(fixed.FromInt(90))); got != V(0, -5) {
		t.Errorf("quarter turn of (5, 0) = %v", got)
	}
	if got := V(3, 4).Rotate(FromAngle(0)); got != V(3, 4) {
		t.Errorf("zero turn changed the vector: %v", got)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		v    Vector
		want int
	}{
		{V(1, 0), 0},
		{V(0, -3), 90},
		{V(-2, 0), 180},
		{V(0, 7), 270},
		{V(1, -1), 45},
	}
	for _, tt := range tests {
		got := tt.v.Angle()
		diff := (got - fixed.FromInt(tt.want)).Abs()
		if diff > fixed.FromRatio(1, 100) {
			t.Errorf("%v.Angle() = %v, want %d", tt.v, got, tt.want)
		}
	}
}

func TestVectorBasics(t *testing.T) {
	a, b := V(3, 4), V(-1, 2)
	if a.Add(b) != V(2, 6) || a.Sub(b) != V(4, 2) {
		t.Error("Add/Sub")
	}
	if a.Dot(b) != fixed.FromInt(5) || a.Cross(b) != fixed.FromInt(10) {
		t.Errorf("Dot = %v, Cross = %v", a.Dot(b), a.Cross(b))
	}
	if a.Magnitude() != fixed.FromInt(5) {
		t.Errorf("Magnitude = %v", a.Magnitude())
	}
	if a.Flip(true, false) != V(-3, 4) || a.Flip(false, true) != V(3, -4) {
		t.Error("Flip")
	}
	if got := V(0, 0).Lerp(V(10, -10), NewFraction(fixed.FromInt(1), fixed.FromInt(4))); got != (Vector{X: fixed.FromRatio(5, 2), Y: -fixed.FromRatio(5, 2)}) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestRect(t *testing.T) {
	a := RectFrom(0, 0, fixed.FromInt(10), fixed.FromInt(10))
	touching := RectFrom(fixed.FromInt(10), 0, fixed.FromInt(5), fixed.FromInt(5))
	inside := RectFrom(fixed.FromInt(2), fixed.FromInt(2), fixed.FromInt(2), fixed.FromInt(2))

	if !a.Meets(touching) || a.Overlaps(touching) {
		t.Error("touching rectangles meet but do not overlap")
	}
	if !a.Meets(inside) || !a.Overlaps(inside) {
		t.Error("nested rectangles overlap")
	}
	if !a.Contains(V(10, 10)) || a.Contains(V(11, 0)) {
		t.Error("Contains includes edges only")
	}
	u := a.Union(touching)
	if u.Right != fixed.FromInt(15) || u.Bottom != fixed.FromInt(10) {
		t.Errorf("Union = %+v", u)
	}
	if got := a.Translate(V(1, 2)); got.Left != fixed.FromInt(1) || got.Top != fixed.FromInt(2) {
		t.Errorf("Translate = %+v", got)
	}
}

func TestFraction(t *testing.T) {
	third := NewFraction(fixed.FromInt(1), fixed.FromInt(3))
	half := NewFraction(fixed.FromInt(2), fixed.FromInt(4))

	if !third.Less(half) || half.Less(third) {
		t.Error("1/3 < 2/4")
	}
	if half.Cmp(Fraction{Num: fixed.FromInt(5), Den: fixed.FromInt(10)}) != 0 {
		t.Error("equal ratios compare equal")
	}
	if got := third.Of(fixed.FromInt(9)); got != fixed.FromInt(3) {
		t.Errorf("1/3 of 9 = %v", got)
	}
	if !NewFraction(fixed.FromInt(5), fixed.FromInt(3)).IsOne() {
		t.Error("NewFraction should clamp above one")
	}
	if !NewFraction(fixed.FromInt(-1), fixed.FromInt(3)).IsZero() {
		t.Error("NewFraction should clamp below zero")
	}
	if !third.Complement().Less(FractionOne) || third.Complement().Cmp(NewFraction(fixed.FromInt(2), fixed.FromInt(3))) != 0 {
		t.Error("Complement of 1/3 is 2/3")
	}
}

func TestPhysicsHelpers(t *testing.T) {
	f := fixed.FromInt
	tests := []struct {
		name string
		got  fixed.F
		want fixed.F
	}{
		{"friction slows", ApplyFriction(f(5), f(2)), f(3)},
		{"friction slows negative", ApplyFriction(f(-5), f(2)), f(-3)},
		{"friction stops", ApplyFriction(f(1), f(2)), 0},
		{"clamp high", ClampSpeed(f(9), f(4)), f(4)},
		{"clamp low", ClampSpeed(f(-9), f(4)), f(-4)},
		{"approach up", Approach(f(0), f(10), f(3)), f(3)},
		{"approach lands", Approach(f(9), f(10), f(3)), f(10)},
		{"approach down", Approach(f(10), f(0), f(4)), f(6)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
