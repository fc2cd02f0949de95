package float8

import (
	"math"

	"github.com/krzysztofjordan/floatx/internal/codec"
)

// E4M3FN is an 8-bit float with a 4-bit exponent (bias 7) and a 3-bit
// mantissa. It has no infinities; only the all-ones exponent with an
// all-ones mantissa is NaN, so the top binade holds finite values up
// to 448. Zero is signed.
type E4M3FN uint8

const (
	// NaNE4M3FN is the canonical (positive) NaN pattern.
	NaNE4M3FN = E4M3FN(0x7f)
	// MaxE4M3FN is the largest finite E4M3FN: 448.
	MaxE4M3FN = E4M3FN(0x7e)
	// SmallestNonzeroE4M3FN is the smallest positive subnormal: 0x1p-9.
	SmallestNonzeroE4M3FN = E4M3FN(0x01)
)

// E4M3FNFromBits returns the value with the binary representation b.
func E4M3FNFromBits(b uint8) E4M3FN {
	return E4M3FN(b)
}

// E4M3FNFromFloat32 returns the E4M3FN nearest to f, rounding ties to
// even. Finite magnitudes beyond 448 saturate to ±MaxE4M3FN; NaN and
// ±Inf inputs encode to the NaN pattern.
func E4M3FNFromFloat32(f float32) E4M3FN {
	return E4M3FN(codec.E4M3FN.Encode(f))
}

// E4M3FNFromFloat64 converts f through float32.
func E4M3FNFromFloat64(f float64) E4M3FN {
	return E4M3FNFromFloat32(float32(f))
}

// Bits returns the binary representation of x.
func (x E4M3FN) Bits() uint8 {
	return uint8(x)
}

// Float32 returns the float32 representation of x.
// The conversion is exact.
func (x E4M3FN) Float32() float32 {
	return codec.E4M3FN.Decode(uint16(x))
}

// Float64 returns the float64 representation of x.
func (x E4M3FN) Float64() float64 {
	return float64(x.Float32())
}

// IsNaN reports whether x is the "not-a-number" value.
func (x E4M3FN) IsNaN() bool {
	return x&0x7f == 0x7f
}

// Signbit reports whether x is negative or negative zero.
func (x E4M3FN) Signbit() bool {
	return x&0x80 != 0
}

// Neg returns x with its sign flipped.
func (x E4M3FN) Neg() E4M3FN {
	return x ^ 0x80
}

// Abs returns the absolute value of x.
func (x E4M3FN) Abs() E4M3FN {
	return x &^ 0x80
}

// Add returns the sum x+y.
func (x E4M3FN) Add(y E4M3FN) E4M3FN {
	return E4M3FNFromFloat32(x.Float32() + y.Float32())
}

// Sub returns the difference x-y.
func (x E4M3FN) Sub(y E4M3FN) E4M3FN {
	return E4M3FNFromFloat32(x.Float32() - y.Float32())
}

// Mul returns the product x*y.
func (x E4M3FN) Mul(y E4M3FN) E4M3FN {
	return E4M3FNFromFloat32(x.Float32() * y.Float32())
}

// Quo returns the quotient x/y. Division of a nonzero value by zero
// overflows the format, which has no infinities, so it yields NaN.
func (x E4M3FN) Quo(y E4M3FN) E4M3FN {
	return E4M3FNFromFloat32(x.Float32() / y.Float32())
}

// Sqrt returns the square root of x.
func (x E4M3FN) Sqrt() E4M3FN {
	return E4M3FNFromFloat32(float32(math.Sqrt(x.Float64())))
}

// Eq reports whether x == y. Zeros compare equal regardless of sign;
// NaN compares unequal to everything, including itself.
func (x E4M3FN) Eq(y E4M3FN) bool {
	return x.Float32() == y.Float32()
}

// Ne reports whether x != y.
func (x E4M3FN) Ne(y E4M3FN) bool {
	return x.Float32() != y.Float32()
}

// Lt reports whether x < y.
func (x E4M3FN) Lt(y E4M3FN) bool {
	return x.Float32() < y.Float32()
}

// Le reports whether x <= y.
func (x E4M3FN) Le(y E4M3FN) bool {
	return x.Float32() <= y.Float32()
}

// Gt reports whether x > y.
func (x E4M3FN) Gt(y E4M3FN) bool {
	return x.Float32() > y.Float32()
}

// Ge reports whether x >= y.
func (x E4M3FN) Ge(y E4M3FN) bool {
	return x.Float32() >= y.Float32()
}

// Compare orders x and y with NaN below every other value and two NaNs
// equal.
func (x E4M3FN) Compare(y E4M3FN) int {
	return cmp(uint8(x), uint8(y), x.IsNaN(), y.IsNaN())
}

func (x E4M3FN) String() string {
	return format(x.Float32())
}
