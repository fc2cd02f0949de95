// Package codec implements the bit-level conversions shared by all of
// the narrow floating-point formats in this module.
//
// Every format is described by a Layout: the widths of its exponent and
// mantissa fields, its exponent bias, and the Flavor that says how the
// format spends its encoding space on special values. A single
// Encode/Decode pair, parameterized by the Layout, serves every public
// type; float32 is the reference representation for both directions.
package codec

import (
	"math"
	"math/bits"
)

// Flavor selects how a format encodes infinities, NaN and zero.
type Flavor int

const (
	// IEEE reserves the all-ones exponent for ±Inf (zero mantissa)
	// and NaN (nonzero mantissa), and keeps a signed zero.
	IEEE Flavor = iota

	// FN has no infinities. Only the all-ones exponent with an
	// all-ones mantissa is NaN; the rest of that exponent row holds
	// ordinary finite values. Zero is signed.
	FN

	// FNUZ has no infinities, a single NaN at the pattern with only
	// the sign bit set, and a single unsigned zero.
	FNUZ
)

// Layout describes one narrow floating-point format.
type Layout struct {
	ExpBits  uint
	MantBits uint
	Bias     int
	Flavor   Flavor
}

// The six layouts implemented by this module.
var (
	BFloat16 = Layout{ExpBits: 8, MantBits: 7, Bias: 127, Flavor: IEEE}
	Float16  = Layout{ExpBits: 5, MantBits: 10, Bias: 15, Flavor: IEEE}
	E4M3FN   = Layout{ExpBits: 4, MantBits: 3, Bias: 7, Flavor: FN}
	E4M3FNUZ = Layout{ExpBits: 4, MantBits: 3, Bias: 8, Flavor: FNUZ}
	E5M2     = Layout{ExpBits: 5, MantBits: 2, Bias: 15, Flavor: IEEE}
	E5M2FNUZ = Layout{ExpBits: 5, MantBits: 2, Bias: 16, Flavor: FNUZ}
)

func (l Layout) signMask() uint16 { return 1 << (l.ExpBits + l.MantBits) }
func (l Layout) expMask() uint16  { return 1<<l.ExpBits - 1 }
func (l Layout) mantMask() uint16 { return 1<<l.MantBits - 1 }

// NaN returns the format's canonical quiet NaN pattern.
func (l Layout) NaN() uint16 {
	switch l.Flavor {
	case FN:
		return l.expMask()<<l.MantBits | l.mantMask()
	case FNUZ:
		return l.signMask()
	}
	return l.expMask()<<l.MantBits | 1<<(l.MantBits-1)
}

// Inf returns the pattern of the infinity with the given sign. It is
// only meaningful for IEEE layouts; FN and FNUZ have no infinities.
func (l Layout) Inf(sign int) uint16 {
	b := l.expMask() << l.MantBits
	if sign < 0 {
		b |= l.signMask()
	}
	return b
}

// MaxFinite returns the magnitude pattern of the largest finite value.
func (l Layout) MaxFinite() uint16 {
	switch l.Flavor {
	case FN:
		return l.expMask()<<l.MantBits | (l.mantMask() - 1)
	case FNUZ:
		return l.expMask()<<l.MantBits | l.mantMask()
	}
	return (l.expMask()-1)<<l.MantBits | l.mantMask()
}

// Decode returns the float32 value of the bit pattern b. Bits above the
// format's width are ignored, so every input decodes to a defined
// value.
func (l Layout) Decode(b uint16) float32 {
	b &= l.signMask()<<1 - 1
	sign := uint32(b&l.signMask()) << (31 - (l.ExpBits + l.MantBits))
	exp := int(b>>l.MantBits) & int(l.expMask())
	mant := uint32(b & l.mantMask())

	switch l.Flavor {
	case IEEE:
		if exp == int(l.expMask()) {
			if mant == 0 {
				return math.Float32frombits(sign | 0x7f800000)
			}
			return math.Float32frombits(sign | 0x7fc00000 | mant<<(23-l.MantBits))
		}
	case FN:
		if exp == int(l.expMask()) && mant == uint32(l.mantMask()) {
			return float32(math.NaN())
		}
	case FNUZ:
		if b == l.signMask() {
			return float32(math.NaN())
		}
	}

	e32 := exp + 127 - l.Bias
	if exp == 0 {
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: shift the leading bit into the implicit position.
		shift := int(l.MantBits) - bits.Len32(mant) + 1
		mant = (mant << shift) & uint32(l.mantMask())
		e32 = 1 + 127 - l.Bias - shift
	}
	if e32 <= 0 {
		// Below the float32 normal range (bfloat16 subnormals).
		// The shift is exact because the mantissa is narrow.
		return math.Float32frombits(sign | (1<<23|mant<<(23-l.MantBits))>>uint(1-e32))
	}
	return math.Float32frombits(sign | uint32(e32)<<23 | mant<<(23-l.MantBits))
}

// Encode converts f to the format's bit pattern, rounding to nearest
// with ties to even. Out-of-range magnitudes saturate to infinity where
// the format has one and to the largest finite magnitude otherwise;
// NaN and unrepresentable infinities map to the canonical NaN pattern.
func (l Layout) Encode(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>31) << (l.ExpBits + l.MantBits)
	exp32 := int(b>>23) & 0xff
	mant32 := b & 0x7fffff

	if exp32 == 0xff {
		if mant32 == 0 && l.Flavor == IEEE {
			return sign | l.expMask()<<l.MantBits
		}
		// NaN, or an infinity the format cannot represent.
		return l.NaN()
	}

	// Normalize to a 24-bit significand: |f| = sig * 2^(exp-23).
	sig := mant32
	var exp int
	if exp32 == 0 {
		if sig == 0 {
			if l.Flavor == FNUZ {
				return 0 // single zero encoding
			}
			return sign
		}
		n := bits.Len32(sig)
		sig <<= uint(24 - n)
		exp = n - 150
	} else {
		sig |= 1 << 23
		exp = exp32 - 127
	}

	et := exp + l.Bias
	drop := uint(23 - l.MantBits)

	if et <= 0 {
		// Subnormal or zero in the target format.
		d := drop + uint(1-et)
		if d > 25 {
			d = 25 // rounds to zero regardless of sig
		}
		sig += (1<<(d-1) - 1) + ((sig >> d) & 1) // round to nearest even
		sig >>= d
		if sig == 0 {
			if l.Flavor == FNUZ {
				return 0
			}
			return sign
		}
		// A carry out of the mantissa field lands in the exponent
		// field, yielding the smallest normal value.
		return sign | uint16(sig)
	}

	sig += (1<<(drop-1) - 1) + ((sig >> drop) & 1) // round to nearest even
	if sig >= 1<<24 {
		sig >>= 1
		et++
	}
	mant := uint16(sig>>drop) & l.mantMask()

	switch l.Flavor {
	case IEEE:
		if et >= int(l.expMask()) {
			return sign | l.expMask()<<l.MantBits
		}
	case FN:
		if et > int(l.expMask()) || et == int(l.expMask()) && mant == l.mantMask() {
			return sign | l.MaxFinite()
		}
	case FNUZ:
		if et > int(l.expMask()) {
			return sign | l.MaxFinite()
		}
	}
	return sign | uint16(et)<<l.MantBits | mant
}
