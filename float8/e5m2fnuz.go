package float8

import (
	"math"

	"github.com/krzysztofjordan/floatx/internal/codec"
)

// E5M2FNUZ is an 8-bit float with a 5-bit exponent (bias 16) and a
// 2-bit mantissa. It has no infinities, a single NaN at 0x80 and a
// single zero encoding.
type E5M2FNUZ uint8

const (
	// NaNE5M2FNUZ is the sole NaN pattern.
	NaNE5M2FNUZ = E5M2FNUZ(0x80)
	// MaxE5M2FNUZ is the largest finite E5M2FNUZ: 57344.
	MaxE5M2FNUZ = E5M2FNUZ(0x7f)
	// SmallestNonzeroE5M2FNUZ is the smallest positive subnormal: 0x1p-17.
	SmallestNonzeroE5M2FNUZ = E5M2FNUZ(0x01)
)

// E5M2FNUZFromBits returns the value with the binary representation b.
func E5M2FNUZFromBits(b uint8) E5M2FNUZ {
	return E5M2FNUZ(b)
}

// E5M2FNUZFromFloat32 returns the E5M2FNUZ nearest to f, rounding ties
// to even. Finite magnitudes beyond 57344 saturate to the largest
// finite value with f's sign; NaN and ±Inf inputs encode to the NaN
// pattern. Zero results always encode to 0x00, there is no negative
// zero.
func E5M2FNUZFromFloat32(f float32) E5M2FNUZ {
	return E5M2FNUZ(codec.E5M2FNUZ.Encode(f))
}

// E5M2FNUZFromFloat64 converts f through float32.
func E5M2FNUZFromFloat64(f float64) E5M2FNUZ {
	return E5M2FNUZFromFloat32(float32(f))
}

// Bits returns the binary representation of x.
func (x E5M2FNUZ) Bits() uint8 {
	return uint8(x)
}

// Float32 returns the float32 representation of x.
// The conversion is exact.
func (x E5M2FNUZ) Float32() float32 {
	return codec.E5M2FNUZ.Decode(uint16(x))
}

// Float64 returns the float64 representation of x.
func (x E5M2FNUZ) Float64() float64 {
	return float64(x.Float32())
}

// IsNaN reports whether x is the "not-a-number" value.
func (x E5M2FNUZ) IsNaN() bool {
	return x == NaNE5M2FNUZ
}

// Signbit reports whether x is negative.
func (x E5M2FNUZ) Signbit() bool {
	return x&0x80 != 0 && x != NaNE5M2FNUZ
}

// Neg returns x with its sign flipped. Zero and NaN are unchanged.
func (x E5M2FNUZ) Neg() E5M2FNUZ {
	if x == 0 || x == NaNE5M2FNUZ {
		return x
	}
	return x ^ 0x80
}

// Abs returns the absolute value of x. NaN is unchanged.
func (x E5M2FNUZ) Abs() E5M2FNUZ {
	if x == NaNE5M2FNUZ {
		return x
	}
	return x &^ 0x80
}

// Add returns the sum x+y.
func (x E5M2FNUZ) Add(y E5M2FNUZ) E5M2FNUZ {
	return E5M2FNUZFromFloat32(x.Float32() + y.Float32())
}

// Sub returns the difference x-y.
func (x E5M2FNUZ) Sub(y E5M2FNUZ) E5M2FNUZ {
	return E5M2FNUZFromFloat32(x.Float32() - y.Float32())
}

// Mul returns the product x*y.
func (x E5M2FNUZ) Mul(y E5M2FNUZ) E5M2FNUZ {
	return E5M2FNUZFromFloat32(x.Float32() * y.Float32())
}

// Quo returns the quotient x/y. Division of a nonzero value by zero
// overflows the format, which has no infinities, so it yields NaN.
func (x E5M2FNUZ) Quo(y E5M2FNUZ) E5M2FNUZ {
	return E5M2FNUZFromFloat32(x.Float32() / y.Float32())
}

// Sqrt returns the square root of x.
func (x E5M2FNUZ) Sqrt() E5M2FNUZ {
	return E5M2FNUZFromFloat32(float32(math.Sqrt(x.Float64())))
}

// Eq reports whether x == y. NaN compares unequal to everything,
// including itself.
func (x E5M2FNUZ) Eq(y E5M2FNUZ) bool {
	return x.Float32() == y.Float32()
}

// Ne reports whether x != y.
func (x E5M2FNUZ) Ne(y E5M2FNUZ) bool {
	return x.Float32() != y.Float32()
}

// Lt reports whether x < y.
func (x E5M2FNUZ) Lt(y E5M2FNUZ) bool {
	return x.Float32() < y.Float32()
}

// Le reports whether x <= y.
func (x E5M2FNUZ) Le(y E5M2FNUZ) bool {
	return x.Float32() <= y.Float32()
}

// Gt reports whether x > y.
func (x E5M2FNUZ) Gt(y E5M2FNUZ) bool {
	return x.Float32() > y.Float32()
}

// Ge reports whether x >= y.
func (x E5M2FNUZ) Ge(y E5M2FNUZ) bool {
	return x.Float32() >= y.Float32()
}

// Compare orders x and y with NaN below every other value and two NaNs
// equal.
func (x E5M2FNUZ) Compare(y E5M2FNUZ) int {
	return cmp(uint8(x), uint8(y), x.IsNaN(), y.IsNaN())
}

func (x E5M2FNUZ) String() string {
	return format(x.Float32())
}
