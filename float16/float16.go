// Package float16 implements the IEEE 754 binary16 floating-point
// format: 1 sign bit, 5 exponent bits and 10 mantissa bits, with an
// exponent bias of 15.
package float16

import "github.com/krzysztofjordan/floatx/internal/codec"

// Float16 represents a 16-bit floating point number.
type Float16 uint16

const (
	shift16    = 10
	mask16     = 0x1f
	fracMask16 = 1<<shift16 - 1
	signMask16 = 1 << 15

	uvnan    = 0x7e00
	uvinf    = 0x7c00
	uvneginf = 0xfc00
)

const (
	// Max is the largest finite Float16: 65504.
	Max = Float16(0x7bff)
	// SmallestNonzero is the smallest positive subnormal Float16: 0x1p-24.
	SmallestNonzero = Float16(0x0001)
)

var layout = codec.Float16

// NaN returns a quiet NaN.
func NaN() Float16 {
	return Float16(uvnan)
}

// Inf returns an infinity with the given sign.
// A sign >= 0 returns positive infinity, a sign < 0 negative infinity.
func Inf(sign int) Float16 {
	if sign < 0 {
		return Float16(uvneginf)
	}
	return Float16(uvinf)
}

// FromBits returns the floating point number corresponding
// the IEEE 754 binary representation b.
func FromBits(b uint16) Float16 {
	return Float16(b)
}

// FromFloat32 returns the Float16 nearest to f,
// rounding ties to even.
func FromFloat32(f float32) Float16 {
	return Float16(layout.Encode(f))
}

// FromFloat64 converts f through float32.
func FromFloat64(f float64) Float16 {
	return FromFloat32(float32(f))
}

// Bits returns the IEEE 754 binary representation of x.
func (x Float16) Bits() uint16 {
	return uint16(x)
}

// Float32 returns the float32 representation of x.
// The conversion is exact.
func (x Float16) Float32() float32 {
	return layout.Decode(uint16(x))
}

// Float64 returns the float64 representation of x.
// The conversion is exact.
func (x Float16) Float64() float64 {
	return float64(x.Float32())
}

// IsNaN reports whether x is a "not-a-number" value.
func (x Float16) IsNaN() bool {
	return x&(mask16<<shift16) == mask16<<shift16 && x&fracMask16 != 0
}

// IsInf reports whether x is an infinity.
// A sign > 0 checks for positive infinity only, a sign < 0 for
// negative infinity only, and a sign == 0 for either.
func (x Float16) IsInf(sign int) bool {
	return sign >= 0 && x == uvinf || sign <= 0 && x == uvneginf
}

// Signbit reports whether x is negative or negative zero.
func (x Float16) Signbit() bool {
	return x&signMask16 != 0
}

// Neg returns x with its sign flipped.
func (x Float16) Neg() Float16 {
	return x ^ signMask16
}

// Abs returns the absolute value of x.
func (x Float16) Abs() Float16 {
	return x &^ signMask16
}
