package bfloat16

import (
	"math"
	"runtime"
	"testing"
)

var negZero = math.Float64frombits(1 << 63)

func TestFromFloat32(t *testing.T) {
	tests := []struct {
		f float32
		r BFloat16
	}{
		{0, 0x0000},
		{1, 0x3f80},
		{-2, 0xc000},
		{0x1.92p+01, 0x4049},    // pi rounded to 8 bits
		{0x1.fep+127, 0x7f7f},   // largest normal number
		{0x1p-126, 0x0080},      // smallest positive normal number
		{0x1p-133, 0x0001},      // smallest positive subnormal number
		{0x1.fcp-127, 0x007f},   // largest positive subnormal number
		{float32(negZero), 0x8000},

		// rounds to nearest even
		{0x1.01p+00, 0x3f80}, // tie, down to even
		{0x1.03p+00, 0x3f82}, // tie, up to even
		{math.Nextafter32(0x1.01p+00, 2), 0x3f81},

		// underflow
		{0x1p-134, 0x0000}, // tie, half of the smallest subnormal
		{math.Nextafter32(0x1p-134, 1), 0x0001},
		{0x1p-135, 0x0000},

		// overflow
		{math.MaxFloat32, 0x7f80},
		{-math.MaxFloat32, 0xff80},

		// infinities
		{float32(math.Inf(1)), 0x7f80},
		{float32(math.Inf(-1)), 0xff80},

		// NaN
		{float32(math.NaN()), 0x7fc0},
	}
	for _, tt := range tests {
		r := FromFloat32(tt.f)
		if r != tt.r {
			t.Errorf("%x: expected %04x, got %04x", tt.f, tt.r, r)
		}
	}
}

func TestFromFloat32_All(t *testing.T) {
	for bits := 0; bits < 1<<16; bits++ {
		f := FromBits(uint16(bits))
		if !f.IsNaN() && f != FromFloat32(f.Float32()) {
			t.Errorf("%04x: expected %04x, got %04x", bits, f, FromFloat32(f.Float32()))
		}
	}
}

// TestFloat32_Truncated checks that decoding is exactly the bit
// pattern widened into the upper half of a float32.
func TestFloat32_Truncated(t *testing.T) {
	for bits := 0; bits < 1<<16; bits++ {
		f := FromBits(uint16(bits))
		got := math.Float32bits(f.Float32())
		want := uint32(bits) << 16
		if got != want {
			t.Errorf("%04x: expected %08x, got %08x", bits, want, got)
		}
	}
}

func TestFloat32(t *testing.T) {
	tests := []struct {
		f BFloat16
		r float32
	}{
		{0x0000, 0},
		{0x3f80, 1},
		{0x4049, 0x1.92p+01}, // 3.140625
		{0xc000, -2},
		{0x0001, 0x1p-133},
		{0x007f, 0x1.fcp-127},
		{0x7f7f, 0x1.fep+127},
	}
	for _, tt := range tests {
		if r := tt.f.Float32(); r != tt.r {
			t.Errorf("%04x: expected %x, got %x", uint16(tt.f), tt.r, r)
		}
	}
}

func TestFloat32_Specials(t *testing.T) {
	if r := Inf(1).Float32(); !math.IsInf(float64(r), 1) {
		t.Errorf("expected +Inf, got %x", r)
	}
	if r := Inf(-1).Float32(); !math.IsInf(float64(r), -1) {
		t.Errorf("expected -Inf, got %x", r)
	}
	if r := NaN().Float32(); !math.IsNaN(float64(r)) {
		t.Errorf("expected NaN, got %x", r)
	}
	if r := BFloat16(0x8000).Float32(); r != 0 || !math.IsInf(float64(1/r), -1) {
		t.Errorf("expected -0, got %x", r)
	}
}

func TestArithmetic(t *testing.T) {
	one := FromFloat32(1)
	two := FromFloat32(2)

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
	if r := FromFloat32(4).Sqrt(); r.Float32() != 2 {
		t.Errorf("sqrt(4): expected 2, got %x", r.Float32())
	}

	// overflow saturates to infinity
	if r := Max.Add(Max); !r.IsInf(1) {
		t.Errorf("max + max: expected +Inf, got %x", r.Float32())
	}
	// division by zero
	if r := one.Quo(BFloat16(0)); !r.IsInf(1) {
		t.Errorf("1 / 0: expected +Inf, got %x", r.Float32())
	}
	if r := BFloat16(0).Quo(BFloat16(0)); !r.IsNaN() {
		t.Errorf("0 / 0: expected NaN, got %x", r.Float32())
	}
	// NaN propagates
	if r := NaN().Add(one); !r.IsNaN() {
		t.Errorf("NaN + 1: expected NaN, got %x", r.Float32())
	}
}

func TestRounding(t *testing.T) {
	// 1 + 2^-8 is exactly between 1 and the next bfloat16; the even
	// neighbor wins.
	one := FromFloat32(1)
	eps := FromFloat32(0x1p-8)
	if r := one.Add(eps); r != one {
		t.Errorf("1 + 0x1p-8: expected 0x3f80, got %04x", r)
	}
	next := FromBits(0x3f81)
	if r := next.Add(eps); r != FromBits(0x3f82) {
		t.Errorf("0x1.02p0 + 0x1p-8: expected 0x3f82, got %04x", r)
	}
}

func TestComparisons(t *testing.T) {
	one := FromFloat32(1)
	two := FromFloat32(2)

	if !one.Lt(two) || !two.Gt(one) || one.Ge(two) || two.Le(one) {
		t.Errorf("1 < 2 ordering is wrong")
	}
	if !one.Eq(one) || one.Ne(one) {
		t.Errorf("1 == 1 is wrong")
	}
	if !BFloat16(0x8000).Eq(BFloat16(0x0000)) {
		t.Errorf("0 must equal -0")
	}
	if NaN().Eq(NaN()) || !NaN().Ne(NaN()) {
		t.Errorf("NaN comparison is wrong")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b BFloat16
		want int
	}{
		{FromFloat32(1), FromFloat32(2), -1},
		{FromFloat32(2), FromFloat32(1), 1},
		{FromFloat32(-1), FromFloat32(-2), 1},
		{BFloat16(0x8000), BFloat16(0x0000), 0}, // -0 == 0
		{Inf(-1), Inf(1), -1},
		{NaN(), Inf(-1), -1}, // NaN is less than any non-NaN
		{NaN(), NaN(), 0},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestNegAbsSignbit(t *testing.T) {
	if got := FromFloat32(1).Neg(); got != 0xbf80 {
		t.Errorf("expected %04x, got %04x", 0xbf80, got)
	}
	if got := BFloat16(0xbf80).Abs(); got != 0x3f80 {
		t.Errorf("expected %04x, got %04x", 0x3f80, got)
	}
	if !BFloat16(0x8000).Signbit() || BFloat16(0x0000).Signbit() {
		t.Errorf("Signbit is wrong")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		f BFloat16
		s string
	}{
		{FromFloat32(1.5), "1.5"},
		{BFloat16(0x4049), "3.140625"},
		{FromFloat32(-2), "-2"},
		{Inf(1), "+Inf"},
		{Inf(-1), "-Inf"},
		{NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.s {
			t.Errorf("%04x: expected %q, got %q", uint16(tt.f), tt.s, got)
		}
	}
}

func BenchmarkFromFloat32(b *testing.B) {
	f := float32(0x1.92p+01)
	for i := 0; i < b.N; i++ {
		runtime.KeepAlive(FromFloat32(f))
	}
}

func BenchmarkFloat32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		runtime.KeepAlive(BFloat16(uint16(i)).Float32())
	}
}
