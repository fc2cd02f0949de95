package float16

import "math"

// All arithmetic goes through the float32 reference representation:
// decode both operands, operate in float32, re-encode with rounding to
// nearest even. float32 carries more than twice the precision of the
// binary16 significand, so the results are correctly rounded, and the
// IEEE special cases (NaN propagation, ±Inf, division by zero) fall
// out of the float32 operation.

// Add returns the sum x+y.
func (x Float16) Add(y Float16) Float16 {
	return FromFloat32(x.Float32() + y.Float32())
}

// Sub returns the difference x-y.
func (x Float16) Sub(y Float16) Float16 {
	return FromFloat32(x.Float32() - y.Float32())
}

// Mul returns the product x*y.
func (x Float16) Mul(y Float16) Float16 {
	return FromFloat32(x.Float32() * y.Float32())
}

// Quo returns the quotient x/y.
func (x Float16) Quo(y Float16) Float16 {
	return FromFloat32(x.Float32() / y.Float32())
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func (x Float16) Sqrt() Float16 {
	return FromFloat32(float32(math.Sqrt(x.Float64())))
}

// Eq reports whether x == y. Zeros compare equal regardless of sign;
// NaN compares unequal to everything, including itself.
func (x Float16) Eq(y Float16) bool {
	return x.Float32() == y.Float32()
}

// Ne reports whether x != y.
func (x Float16) Ne(y Float16) bool {
	return x.Float32() != y.Float32()
}

// Lt reports whether x < y.
func (x Float16) Lt(y Float16) bool {
	return x.Float32() < y.Float32()
}

// Le reports whether x <= y.
func (x Float16) Le(y Float16) bool {
	return x.Float32() <= y.Float32()
}

// Gt reports whether x > y.
func (x Float16) Gt(y Float16) bool {
	return x.Float32() > y.Float32()
}

// Ge reports whether x >= y.
func (x Float16) Ge(y Float16) bool {
	return x.Float32() >= y.Float32()
}

// Compare compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// a NaN is considered less than any non-NaN, and two NaNs are equal.
func (x Float16) Compare(y Float16) int {
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
