package float8

import (
	"math"
	"testing"
)

func TestE4M3FNFromFloat32(t *testing.T) {
	tests := []struct {
		f float32
		r E4M3FN
	}{
		{0, 0x00},
		{0x1p-9, 0x01},     // smallest positive subnormal number
		{0x1.cp-7, 0x07},   // largest positive subnormal number
		{0x1p-6, 0x08},     // smallest positive normal number
		{0.5, 0x30},
		{1, 0x38},
		{2, 0x40},
		{3, 0x44},
		{448, 0x7e}, // largest normal number
		{-1, 0xb8},
		{math.Float32frombits(0x80000000), 0x80}, // -0

		// rounds to nearest even
		{0x1.1p+00, 0x38}, // tie, down to even
		{0x1.3p+00, 0x3a}, // tie, up to even
		{math.Nextafter32(0x1.1p+00, 2), 0x39},

		// underflow
		{0x1p-10, 0x00}, // tie, half of the smallest subnormal
		{math.Nextafter32(0x1p-10, 1), 0x01},
		{0x1p-20, 0x00},

		// overflow saturates, the format has no infinities
		{464, 0x7e}, // tie between 448 and the NaN slot resolves down
		{512, 0x7e},
		{1e10, 0x7e},
		{-512, 0xfe},
		{float32(math.Inf(1)), 0x7f},
		{float32(math.Inf(-1)), 0x7f},

		// NaN
		{float32(math.NaN()), 0x7f},
	}
	for _, tt := range tests {
		if r := E4M3FNFromFloat32(tt.f); r != tt.r {
			t.Errorf("%x: expected %02x, got %02x", tt.f, tt.r, r)
		}
	}
}

func TestE4M3FNFromFloat32_All(t *testing.T) {
	for bits := 0; bits < 1<<8; bits++ {
		f := E4M3FNFromBits(uint8(bits))
		if !f.IsNaN() && f != E4M3FNFromFloat32(f.Float32()) {
			t.Errorf("%02x: expected %02x, got %02x", bits, f, E4M3FNFromFloat32(f.Float32()))
		}
	}
}

func TestE4M3FNFloat32(t *testing.T) {
	tests := []struct {
		f E4M3FN
		r float32
	}{
		{0x00, 0},
		{0x01, 0x1p-9},
		{0x07, 0x1.cp-7},
		{0x08, 0x1p-6},
		{0x38, 1},
		{0x44, 3},
		{0x7e, 448},
		{0xb8, -1},
	}
	for _, tt := range tests {
		if r := tt.f.Float32(); r != tt.r {
			t.Errorf("%02x: expected %x, got %x", uint8(tt.f), tt.r, r)
		}
	}

	// both NaN patterns decode to NaN
	for _, b := range []E4M3FN{0x7f, 0xff} {
		if r := b.Float32(); !math.IsNaN(float64(r)) {
			t.Errorf("%02x: expected NaN, got %x", uint8(b), r)
		}
	}
	// -0 decodes to -0
	if r := E4M3FN(0x80).Float32(); r != 0 || !math.IsInf(float64(1/r), -1) {
		t.Errorf("expected -0, got %x", r)
	}
}

func TestE4M3FNArithmetic(t *testing.T) {
	one := E4M3FNFromFloat32(1)
	two := E4M3FNFromFloat32(2)

	if r := one.Add(two); r.Float32() != 3 {
		t.Errorf("1 + 2: expected 3, got %x", r.Float32())
	}
	if r := one.Sub(two); r.Float32() != -1 {
		t.Errorf("1 - 2: expected -1, got %x", r.Float32())
	}
	if r := one.Mul(two); r.Float32() != 2 {
		t.Errorf("1 * 2: expected 2, got %x", r.Float32())
	}
	if r := one.Quo(two); r.Float32() != 0.5 {
		t.Errorf("1 / 2: expected 0.5, got %x", r.Float32())
	}
	if r := E4M3FNFromFloat32(4).Sqrt(); r.Float32() != 2 {
		t.Errorf("sqrt(4): expected 2, got %x", r.Float32())
	}

	// overflow saturates to the largest finite value
	if r := MaxE4M3FN.Add(MaxE4M3FN); r != MaxE4M3FN {
		t.Errorf("max + max: expected %02x, got %02x", uint8(MaxE4M3FN), uint8(r))
	}
	if r := MaxE4M3FN.Neg().Sub(MaxE4M3FN); r != MaxE4M3FN|0x80 {
		t.Errorf("-max - max: expected %02x, got %02x", uint8(MaxE4M3FN|0x80), uint8(r))
	}

	// division by zero has no infinity to land on
	if r := one.Quo(E4M3FN(0)); !r.IsNaN() {
		t.Errorf("1 / 0: expected NaN, got %x", r.Float32())
	}
	if r := E4M3FN(0).Quo(E4M3FN(0)); !r.IsNaN() {
		t.Errorf("0 / 0: expected NaN, got %x", r.Float32())
	}

	// NaN propagates
	if r := NaNE4M3FN.Add(one); !r.IsNaN() {
		t.Errorf("NaN + 1: expected NaN, got %x", r.Float32())
	}
	if r := one.Mul(NaNE4M3FN); !r.IsNaN() {
		t.Errorf("1 * NaN: expected NaN, got %x", r.Float32())
	}
}

func TestE4M3FNComparisons(t *testing.T) {
	one := E4M3FNFromFloat32(1)
	two := E4M3FNFromFloat32(2)

	if !one.Lt(two) || !two.Gt(one) || one.Ge(two) || two.Le(one) {
		t.Errorf("1 < 2 ordering is wrong")
	}
	if !one.Eq(one) || one.Ne(one) {
		t.Errorf("1 == 1 is wrong")
	}
	if !E4M3FN(0x80).Eq(E4M3FN(0x00)) {
		t.Errorf("0 must equal -0")
	}
	if NaNE4M3FN.Eq(NaNE4M3FN) || !NaNE4M3FN.Ne(NaNE4M3FN) {
		t.Errorf("NaN comparison is wrong")
	}

	tests := []struct {
		a, b E4M3FN
		want int
	}{
		{one, two, -1},
		{two, one, 1},
		{one, one, 0},
		{one.Neg(), two.Neg(), 1},
		{E4M3FN(0x80), E4M3FN(0x00), 0}, // -0 == 0
		{NaNE4M3FN, E4M3FNFromFloat32(-448), -1},
		{NaNE4M3FN, NaNE4M3FN, 0},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestE4M3FNBits(t *testing.T) {
	if !NaNE4M3FN.IsNaN() || !E4M3FN(0xff).IsNaN() || MaxE4M3FN.IsNaN() {
		t.Errorf("IsNaN is wrong")
	}
	if got := E4M3FNFromFloat32(1).Neg(); got != 0xb8 {
		t.Errorf("expected %02x, got %02x", 0xb8, got)
	}
	if got := E4M3FN(0xb8).Abs(); got != 0x38 {
		t.Errorf("expected %02x, got %02x", 0x38, got)
	}
	if !E4M3FN(0x80).Signbit() || E4M3FN(0x38).Signbit() {
		t.Errorf("Signbit is wrong")
	}
}

func TestE4M3FNString(t *testing.T) {
	tests := []struct {
		f E4M3FN
		s string
	}{
		{E4M3FNFromFloat32(1.5), "1.5"},
		{E4M3FNFromFloat32(-448), "-448"},
		{NaNE4M3FN, "NaN"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.s {
			t.Errorf("%02x: expected %q, got %q", uint8(tt.f), tt.s, got)
		}
	}
}
