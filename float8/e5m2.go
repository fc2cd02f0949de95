package float8

import (
	"math"

	"github.com/krzysztofjordan/floatx/internal/codec"
)

// E5M2 is an 8-bit float with a 5-bit exponent (bias 15) and a 2-bit
// mantissa, following the IEEE convention: the all-ones exponent
// encodes ±Inf (zero mantissa) and NaN (nonzero mantissa). Zero is
// signed.
type E5M2 uint8

const (
	// NaNE5M2 is the canonical quiet NaN pattern.
	NaNE5M2 = E5M2(0x7e)
	// MaxE5M2 is the largest finite E5M2: 57344.
	MaxE5M2 = E5M2(0x7b)
	// SmallestNonzeroE5M2 is the smallest positive subnormal: 0x1p-16.
	SmallestNonzeroE5M2 = E5M2(0x01)

	uvinfE5M2    = E5M2(0x7c)
	uvneginfE5M2 = E5M2(0xfc)
)

// E5M2FromBits returns the value with the binary representation b.
func E5M2FromBits(b uint8) E5M2 {
	return E5M2(b)
}

// E5M2FromFloat32 returns the E5M2 nearest to f, rounding ties to
// even. Magnitudes beyond the finite range saturate to ±Inf.
func E5M2FromFloat32(f float32) E5M2 {
	return E5M2(codec.E5M2.Encode(f))
}

// E5M2FromFloat64 converts f through float32.
func E5M2FromFloat64(f float64) E5M2 {
	return E5M2FromFloat32(float32(f))
}

// InfE5M2 returns an infinity with the given sign.
// A sign >= 0 returns positive infinity, a sign < 0 negative infinity.
func InfE5M2(sign int) E5M2 {
	if sign < 0 {
		return uvneginfE5M2
	}
	return uvinfE5M2
}

// Bits returns the binary representation of x.
func (x E5M2) Bits() uint8 {
	return uint8(x)
}

// Float32 returns the float32 representation of x.
// The conversion is exact.
func (x E5M2) Float32() float32 {
	return codec.E5M2.Decode(uint16(x))
}

// Float64 returns the float64 representation of x.
func (x E5M2) Float64() float64 {
	return float64(x.Float32())
}

// IsNaN reports whether x is a "not-a-number" value.
func (x E5M2) IsNaN() bool {
	return x&0x7c == 0x7c && x&0x03 != 0
}

// IsInf reports whether x is an infinity.
// A sign > 0 checks for positive infinity only, a sign < 0 for
// negative infinity only, and a sign == 0 for either.
func (x E5M2) IsInf(sign int) bool {
	return sign >= 0 && x == uvinfE5M2 || sign <= 0 && x == uvneginfE5M2
}

// Signbit reports whether x is negative or negative zero.
func (x E5M2) Signbit() bool {
	return x&0x80 != 0
}

// Neg returns x with its sign flipped.
func (x E5M2) Neg() E5M2 {
	return x ^ 0x80
}

// Abs returns the absolute value of x.
func (x E5M2) Abs() E5M2 {
	return x &^ 0x80
}

// Add returns the sum x+y.
func (x E5M2) Add(y E5M2) E5M2 {
	return E5M2FromFloat32(x.Float32() + y.Float32())
}

// Sub returns the difference x-y.
func (x E5M2) Sub(y E5M2) E5M2 {
	return E5M2FromFloat32(x.Float32() - y.Float32())
}

// Mul returns the product x*y.
func (x E5M2) Mul(y E5M2) E5M2 {
	return E5M2FromFloat32(x.Float32() * y.Float32())
}

// Quo returns the quotient x/y. Division of a nonzero value by zero
// yields an infinity with the usual IEEE sign rule.
func (x E5M2) Quo(y E5M2) E5M2 {
	return E5M2FromFloat32(x.Float32() / y.Float32())
}

// Sqrt returns the square root of x.
func (x E5M2) Sqrt() E5M2 {
	return E5M2FromFloat32(float32(math.Sqrt(x.Float64())))
}

// Eq reports whether x == y. Zeros compare equal regardless of sign;
// NaN compares unequal to everything, including itself.
func (x E5M2) Eq(y E5M2) bool {
	return x.Float32() == y.Float32()
}

// Ne reports whether x != y.
func (x E5M2) Ne(y E5M2) bool {
	return x.Float32() != y.Float32()
}

// Lt reports whether x < y.
func (x E5M2) Lt(y E5M2) bool {
	return x.Float32() < y.Float32()
}

// Le reports whether x <= y.
func (x E5M2) Le(y E5M2) bool {
	return x.Float32() <= y.Float32()
}

// Gt reports whether x > y.
func (x E5M2) Gt(y E5M2) bool {
	return x.Float32() > y.Float32()
}

// Ge reports whether x >= y.
func (x E5M2) Ge(y E5M2) bool {
	return x.Float32() >= y.Float32()
}

// Compare orders x and y with NaN below every other value and two NaNs
// equal.
func (x E5M2) Compare(y E5M2) int {
	return cmp(uint8(x), uint8(y), x.IsNaN(), y.IsNaN())
}

func (x E5M2) String() string {
	return format(x.Float32())
}
