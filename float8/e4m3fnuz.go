package float8

import (
	"math"

	"github.com/krzysztofjordan/floatx/internal/codec"
)

// E4M3FNUZ is an 8-bit float with a 4-bit exponent (bias 8) and a
// 3-bit mantissa. It has no infinities, a single NaN at 0x80 (the
// pattern that would otherwise be negative zero) and a single zero
// encoding.
type E4M3FNUZ uint8

const (
	// NaNE4M3FNUZ is the sole NaN pattern.
	NaNE4M3FNUZ = E4M3FNUZ(0x80)
	// MaxE4M3FNUZ is the largest finite E4M3FNUZ: 240.
	MaxE4M3FNUZ = E4M3FNUZ(0x7f)
	// SmallestNonzeroE4M3FNUZ is the smallest positive subnormal: 0x1p-10.
	SmallestNonzeroE4M3FNUZ = E4M3FNUZ(0x01)
)

// E4M3FNUZFromBits returns the value with the binary representation b.
func E4M3FNUZFromBits(b uint8) E4M3FNUZ {
	return E4M3FNUZ(b)
}

// E4M3FNUZFromFloat32 returns the E4M3FNUZ nearest to f, rounding ties
// to even. Finite magnitudes beyond 240 saturate to the largest finite
// value with f's sign; NaN and ±Inf inputs encode to the NaN pattern.
// Zero results always encode to 0x00, there is no negative zero.
func E4M3FNUZFromFloat32(f float32) E4M3FNUZ {
	return E4M3FNUZ(codec.E4M3FNUZ.Encode(f))
}

// E4M3FNUZFromFloat64 converts f through float32.
func E4M3FNUZFromFloat64(f float64) E4M3FNUZ {
	return E4M3FNUZFromFloat32(float32(f))
}

// Bits returns the binary representation of x.
func (x E4M3FNUZ) Bits() uint8 {
	return uint8(x)
}

// Float32 returns the float32 representation of x.
// The conversion is exact.
func (x E4M3FNUZ) Float32() float32 {
	return codec.E4M3FNUZ.Decode(uint16(x))
}

// Float64 returns the float64 representation of x.
func (x E4M3FNUZ) Float64() float64 {
	return float64(x.Float32())
}

// IsNaN reports whether x is the "not-a-number" value.
func (x E4M3FNUZ) IsNaN() bool {
	return x == NaNE4M3FNUZ
}

// Signbit reports whether x is negative.
func (x E4M3FNUZ) Signbit() bool {
	return x&0x80 != 0 && x != NaNE4M3FNUZ
}

// Neg returns x with its sign flipped. Zero and NaN are unchanged.
func (x E4M3FNUZ) Neg() E4M3FNUZ {
	if x == 0 || x == NaNE4M3FNUZ {
		return x
	}
	return x ^ 0x80
}

// Abs returns the absolute value of x. NaN is unchanged.
func (x E4M3FNUZ) Abs() E4M3FNUZ {
	if x == NaNE4M3FNUZ {
		return x
	}
	return x &^ 0x80
}

// Add returns the sum x+y.
func (x E4M3FNUZ) Add(y E4M3FNUZ) E4M3FNUZ {
	return E4M3FNUZFromFloat32(x.Float32() + y.Float32())
}

// Sub returns the difference x-y.
func (x E4M3FNUZ) Sub(y E4M3FNUZ) E4M3FNUZ {
	return E4M3FNUZFromFloat32(x.Float32() - y.Float32())
}

// Mul returns the product x*y.
func (x E4M3FNUZ) Mul(y E4M3FNUZ) E4M3FNUZ {
	return E4M3FNUZFromFloat32(x.Float32() * y.Float32())
}

// Quo returns the quotient x/y. Division of a nonzero value by zero
// overflows the format, which has no infinities, so it yields NaN.
func (x E4M3FNUZ) Quo(y E4M3FNUZ) E4M3FNUZ {
	return E4M3FNUZFromFloat32(x.Float32() / y.Float32())
}

// Sqrt returns the square root of x.
func (x E4M3FNUZ) Sqrt() E4M3FNUZ {
	return E4M3FNUZFromFloat32(float32(math.Sqrt(x.Float64())))
}

// Eq reports whether x == y. NaN compares unequal to everything,
// including itself.
func (x E4M3FNUZ) Eq(y E4M3FNUZ) bool {
	return x.Float32() == y.Float32()
}

// Ne reports whether x != y.
func (x E4M3FNUZ) Ne(y E4M3FNUZ) bool {
	return x.Float32() != y.Float32()
}

// Lt reports whether x < y.
func (x E4M3FNUZ) Lt(y E4M3FNUZ) bool {
	return x.Float32() < y.Float32()
}

// Le reports whether x <= y.
func (x E4M3FNUZ) Le(y E4M3FNUZ) bool {
	return x.Float32() <= y.Float32()
}

// Gt reports whether x > y.
func (x E4M3FNUZ) Gt(y E4M3FNUZ) bool {
	return x.Float32() > y.Float32()
}

// Ge reports whether x >= y.
func (x E4M3FNUZ) Ge(y E4M3FNUZ) bool {
	return x.Float32() >= y.Float32()
}

// Compare orders x and y with NaN below every other value and two NaNs
// equal.
func (x E4M3FNUZ) Compare(y E4M3FNUZ) int {
	return cmp(uint8(x), uint8(y), x.IsNaN(), y.IsNaN())
}

func (x E4M3FNUZ) String() string {
	return format(x.Float32())
}
