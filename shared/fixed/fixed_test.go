package fixed

import "testing"

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b F
		mul  F
		div  F
	}{
		{"integers", FromInt(6), FromInt(3), FromInt(18), FromInt(2)},
		{"negative", FromInt(-6), FromInt(3), FromInt(-18), FromInt(-2)},
		{"fractions", Half, Half, One / 4, One},
		{"both negative", FromInt(-4), FromInt(-2), FromInt(8), FromInt(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mul(tt.b); got != tt.mul {
				t.Errorf("Mul = %v, want %v", got, tt.mul)
			}
			if got := tt.a.Div(tt.b); got != tt.div {
				t.Errorf("Div = %v, want %v", got, tt.div)
			}
		})
	}
}

func TestDivByZero(t *testing.T) {
	if got := One.Div(0); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := MulDiv(One, One, 0); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestMulSaturates(t *testing.T) {
	big := FromInt(1 << 40)
	if got := big.Mul(big); got != MaxValue {
		t.Errorf("expected saturation, got %v", got)
	}
	if got := big.Mul(-big); got != MinValue {
		t.Errorf("expected negative saturation, got %v", got)
	}
}

func TestMulDivRaw(t *testing.T) {
	// 10 * 3/4 computed on raw values
	if got := MulDiv(FromInt(10), 3, 4); got != FromInt(15)/2 {
		t.Errorf("MulDiv = %v, want 7.5", got)
	}
	if got := MulDiv(FromInt(-10), 3, 4); got != -FromInt(15)/2 {
		t.Errorf("MulDiv = %v, want -7.5", got)
	}
}

func TestCmpProducts(t *testing.T) {
	if CmpProducts(2, 3, 3, 2) != 0 {
		t.Error("2*3 should equal 3*2")
	}
	if CmpProducts(-2, 3, 1, 1) != -1 {
		t.Error("-6 should be less than 1")
	}
	if CmpProducts(MaxValue, 2, MaxValue, 1) != 1 {
		t.Error("product compare must not overflow")
	}
	if CmpProducts(MinValue+1, 2, MinValue+1, 1) != -1 {
		t.Error("negative product compare must not overflow")
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in, want F
	}{
		{0, 0},
		{-One, 0},
		{One, One},
		{FromInt(4), FromInt(2)},
		{FromInt(25), FromInt(5)},
		{One / 4, Half},
		{FromInt(1 << 40), FromInt(1 << 20)},
	}
	for _, tt := range tests {
		if got := tt.in.Sqrt(); got != tt.want {
			t.Errorf("Sqrt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFloorCeilDiv(t *testing.T) {
	cell := FromInt(32)
	tests := []struct {
		v           F
		floor, ceil int
	}{
		{0, 0, 0},
		{FromInt(31), 0, 1},
		{FromInt(32), 1, 1},
		{FromInt(33), 1, 2},
		{FromInt(-1), -1, 0},
		{FromInt(-32), -1, -1},
		{FromInt(-33), -2, -1},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.v, cell); got != tt.floor {
			t.Errorf("FloorDiv(%v) = %d, want %d", tt.v, got, tt.floor)
		}
		if got := CeilDiv(tt.v, cell); got != tt.ceil {
			t.Errorf("CeilDiv(%v) = %d, want %d", tt.v, got, tt.ceil)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want F
	}{
		{0, 0},
		{FromInt(360), 0},
		{FromInt(-90), FromInt(270)},
		{FromInt(725), FromInt(5)},
		{FromInt(-720), 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.want {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCosSinRightAnglesExact(t *testing.T) {
	tests := []struct {
		deg      F
		cos, sin F
	}{
		{0, One, 0},
		{FromInt(90), 0, One},
		{FromInt(180), -One, 0},
		{FromInt(-90), 0, -One},
		{FromInt(450), 0, One},
	}
	for _, tt := range tests {
		c, s := CosSin(tt.deg)
		if c != tt.cos || s != tt.sin {
			t.Errorf("CosSin(%v) = (%v, %v), want (%v, %v)", tt.deg, c, s, tt.cos, tt.sin)
		}
	}
	if !IsRightAngle(FromInt(-270)) || IsRightAngle(FromInt(45)) {
		t.Error("IsRightAngle classification wrong")
	}
}

func TestConversions(t *testing.T) {
	if FromFloat(1.5) != One+Half {
		t.Error("FromFloat(1.5) mismatch")
	}
	if FromFloat(-2.5).Int() != -3 {
		t.Error("Int should floor")
	}
	if FromRatio(1, 4) != One/4 {
		t.Error("FromRatio(1,4) mismatch")
	}
	if FromInt(3).String() != "3" {
		t.Errorf("String = %q", FromInt(3).String())
	}
}
