// Package float8 implements the four 8-bit floating-point formats used
// as tensor element types: E4M3FN, E5M2 and their finite-only,
// unsigned-zero ("fnuz") variants E4M3FNUZ and E5M2FNUZ.
//
// E5M2 follows the IEEE convention: the all-ones exponent encodes ±Inf
// and NaN. E4M3FN trades the infinities for an extra binade and keeps a
// single NaN pattern per sign (0x7f/0xff). The fnuz variants have no
// infinities, reserve the pattern with only the sign bit set (0x80) as
// their sole NaN, and have exactly one zero encoding; their exponent
// bias is one higher than the corresponding fn/IEEE format.
//
// All conversions and arithmetic go through the float32 reference
// representation with rounding to nearest even. float32 carries more
// than twice the precision of any 8-bit significand, so results are
// correctly rounded.
package float8

import (
	"math"
	"strconv"
)

// cmp is the total order shared by the Compare methods: NaN sorts below
// every non-NaN value, two NaNs are equal, and zeros compare equal
// regardless of sign. Non-NaN patterns are sign-magnitude, so flipping
// the magnitude bits of negative values turns them into ordinary
// two's-complement integers.
func cmp(x, y uint8, xNaN, yNaN bool) int {
	if xNaN && yNaN {
		return 0
	}
	if xNaN {
		return -1
	}
	if yNaN {
		return 1
	}

	ix := int8(x) ^ ((int8(x) >> 7) & 0x7f)
	ix += int8(x >> 7)
	iy := int8(y) ^ ((int8(y) >> 7) & 0x7f)
	iy += int8(y >> 7)
	if ix < iy {
		return -1
	}
	if ix > iy {
		return 1
	}
	return 0
}

func format(f float32) string {
	switch {
	case f != f:
		return "NaN"
	case math.IsInf(float64(f), 1):
		return "+Inf"
	case math.IsInf(float64(f), -1):
		return "-Inf"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
