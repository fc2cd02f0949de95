// Package bfloat16 implements the bfloat16 "brain floating point"
// format: 1 sign bit, 8 exponent bits and 7 mantissa bits, the upper
// half of an IEEE 754 single-precision value. It has the same exponent
// range and bias (127) as float32.
package bfloat16

import (
	"math"
	"strconv"

	"github.com/krzysztofjordan/floatx/internal/codec"
)

// BFloat16 represents a 16-bit brain floating point number.
type BFloat16 uint16

const (
	shiftBF    = 7
	maskBF     = 0xff
	fracMaskBF = 1<<shiftBF - 1
	signMaskBF = 1 << 15

	uvnan    = 0x7fc0
	uvinf    = 0x7f80
	uvneginf = 0xff80
)

const (
	// Max is the largest finite BFloat16: 0x1.fep+127 (about 3.39e38).
	Max = BFloat16(0x7f7f)
	// SmallestNonzero is the smallest positive subnormal BFloat16:
	// 0x1p-133 (about 9.18e-41).
	SmallestNonzero = BFloat16(0x0001)
)

var layout = codec.BFloat16

// NaN returns a quiet NaN.
func NaN() BFloat16 {
	return BFloat16(uvnan)
}

// Inf returns an infinity with the given sign.
// A sign >= 0 returns positive infinity, a sign < 0 negative infinity.
func Inf(sign int) BFloat16 {
	if sign < 0 {
		return BFloat16(uvneginf)
	}
	return BFloat16(uvinf)
}

// FromBits returns the floating point number corresponding to the
// binary representation b.
func FromBits(b uint16) BFloat16 {
	return BFloat16(b)
}

// FromFloat32 returns the BFloat16 nearest to f, rounding ties to even.
func FromFloat32(f float32) BFloat16 {
	return BFloat16(layout.Encode(f))
}

// FromFloat64 converts f through float32.
func FromFloat64(f float64) BFloat16 {
	return FromFloat32(float32(f))
}

// Bits returns the binary representation of x.
func (x BFloat16) Bits() uint16 {
	return uint16(x)
}

// Float32 returns the float32 with x's bits in its upper half.
// The conversion is exact.
func (x BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(x) << 16)
}

// Float64 returns the float64 representation of x.
// The conversion is exact.
func (x BFloat16) Float64() float64 {
	return float64(x.Float32())
}

// IsNaN reports whether x is a "not-a-number" value.
func (x BFloat16) IsNaN() bool {
	return x&(maskBF<<shiftBF) == maskBF<<shiftBF && x&fracMaskBF != 0
}

// IsInf reports whether x is an infinity.
// A sign > 0 checks for positive infinity only, a sign < 0 for
// negative infinity only, and a sign == 0 for either.
func (x BFloat16) IsInf(sign int) bool {
	return sign >= 0 && x == uvinf || sign <= 0 && x == uvneginf
}

// Signbit reports whether x is negative or negative zero.
func (x BFloat16) Signbit() bool {
	return x&signMaskBF != 0
}

// Neg returns x with its sign flipped.
func (x BFloat16) Neg() BFloat16 {
	return x ^ signMaskBF
}

// Abs returns the absolute value of x.
func (x BFloat16) Abs() BFloat16 {
	return x &^ signMaskBF
}

// Add returns the sum x+y, computed in float32 and rounded to nearest
// even.
func (x BFloat16) Add(y BFloat16) BFloat16 {
	return FromFloat32(x.Float32() + y.Float32())
}

// Sub returns the difference x-y.
func (x BFloat16) Sub(y BFloat16) BFloat16 {
	return FromFloat32(x.Float32() - y.Float32())
}

// Mul returns the product x*y.
func (x BFloat16) Mul(y BFloat16) BFloat16 {
	return FromFloat32(x.Float32() * y.Float32())
}

// Quo returns the quotient x/y.
func (x BFloat16) Quo(y BFloat16) BFloat16 {
	return FromFloat32(x.Float32() / y.Float32())
}

// Sqrt returns the square root of x.
func (x BFloat16) Sqrt() BFloat16 {
	return FromFloat32(float32(math.Sqrt(x.Float64())))
}

// Eq reports whether x == y. Zeros compare equal regardless of sign;
// NaN compares unequal to everything, including itself.
func (x BFloat16) Eq(y BFloat16) bool {
	return x.Float32() == y.Float32()
}

// Ne reports whether x != y.
func (x BFloat16) Ne(y BFloat16) bool {
	return x.Float32() != y.Float32()
}

// Lt reports whether x < y.
func (x BFloat16) Lt(y BFloat16) bool {
	return x.Float32() < y.Float32()
}

// Le reports whether x <= y.
func (x BFloat16) Le(y BFloat16) bool {
	return x.Float32() <= y.Float32()
}

// Gt reports whether x > y.
func (x BFloat16) Gt(y BFloat16) bool {
	return x.Float32() > y.Float32()
}

// Ge reports whether x >= y.
func (x BFloat16) Ge(y BFloat16) bool {
	return x.Float32() >= y.Float32()
}

// Compare compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// a NaN is considered less than any non-NaN, and two NaNs are equal.
func (x BFloat16) Compare(y BFloat16) int {
	xNaN := x.IsNaN()
	yNaN := y.IsNaN()
	if xNaN && yNaN {
		return 0
	}
	if xNaN {
		return -1
	}
	if yNaN {
		return 1
	}

	ix := int16(x) ^ ((int16(x) >> 15) & 0x7fff)
	ix += int16(x >> 15)
	iy := int16(y) ^ ((int16(y) >> 15) & 0x7fff)
	iy += int16(y >> 15)
	if ix < iy {
		return -1
	}
	if ix > iy {
		return 1
	}
	return 0
}

// String returns the decimal form of the decoded value, or "NaN",
// "+Inf", "-Inf" for the special values.
func (x BFloat16) String() string {
	switch {
	case x.IsNaN():
		return "NaN"
	case x == uvinf:
		return "+Inf"
	case x == uvneginf:
		return "-Inf"
	}
	return strconv.FormatFloat(x.Float64(), 'g', -1, 32)
}
