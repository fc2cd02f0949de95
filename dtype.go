package floatx

import "fmt"

// DType identifies one of the element types implemented by this
// module.
type DType uint8

const (
	// BFloat16 represents the 16-bit brain floating point type.
	BFloat16 DType = iota + 1
	// Float16 represents the IEEE 754 binary16 type.
	Float16
	// Float8E4M3FN represents the 8-bit e4m3 type with no infinities
	// and a single NaN pattern per sign.
	Float8E4M3FN
	// Float8E4M3FNUZ represents the finite-only, unsigned-zero e4m3
	// variant.
	Float8E4M3FNUZ
	// Float8E5M2 represents the 8-bit e5m2 type with IEEE special
	// values.
	Float8E5M2
	// Float8E5M2FNUZ represents the finite-only, unsigned-zero e5m2
	// variant.
	Float8E5M2FNUZ
)

// Format describes the bit layout and special-value policy of a DType.
type Format struct {
	// Bits is the total width of the encoding.
	Bits int
	// ExpBits and MantBits are the widths of the exponent and
	// mantissa fields; the remaining bit is the sign.
	ExpBits  int
	MantBits int
	// Bias is subtracted from the stored exponent.
	Bias int
	// HasInf reports whether the format encodes infinities.
	HasInf bool
	// HasNaN reports whether the format encodes NaN.
	HasNaN bool
	// SignedZero reports whether the format distinguishes -0 from +0.
	SignedZero bool
}

var (
	dTypeToString = [...]string{
		BFloat16:       "BF16",
		Float16:        "F16",
		Float8E4M3FN:   "F8_E4M3",
		Float8E4M3FNUZ: "F8_E4M3_FNUZ",
		Float8E5M2:     "F8_E5M2",
		Float8E5M2FNUZ: "F8_E5M2_FNUZ",
	}
	dTypeToJSON = [...]string{
		BFloat16:       `"BF16"`,
		Float16:        `"F16"`,
		Float8E4M3FN:   `"F8_E4M3"`,
		Float8E4M3FNUZ: `"F8_E4M3_FNUZ"`,
		Float8E5M2:     `"F8_E5M2"`,
		Float8E5M2FNUZ: `"F8_E5M2_FNUZ"`,
	}
	dTypeToSize = [...]int{
		BFloat16:       2,
		Float16:        2,
		Float8E4M3FN:   1,
		Float8E4M3FNUZ: 1,
		Float8E5M2:     1,
		Float8E5M2FNUZ: 1,
	}
	dTypeToFormat = [...]Format{
		BFloat16:       {Bits: 16, ExpBits: 8, MantBits: 7, Bias: 127, HasInf: true, HasNaN: true, SignedZero: true},
		Float16:        {Bits: 16, ExpBits: 5, MantBits: 10, Bias: 15, HasInf: true, HasNaN: true, SignedZero: true},
		Float8E4M3FN:   {Bits: 8, ExpBits: 4, MantBits: 3, Bias: 7, HasInf: false, HasNaN: true, SignedZero: true},
		Float8E4M3FNUZ: {Bits: 8, ExpBits: 4, MantBits: 3, Bias: 8, HasInf: false, HasNaN: true, SignedZero: false},
		Float8E5M2:     {Bits: 8, ExpBits: 5, MantBits: 2, Bias: 15, HasInf: true, HasNaN: true, SignedZero: true},
		Float8E5M2FNUZ: {Bits: 8, ExpBits: 5, MantBits: 2, Bias: 16, HasInf: false, HasNaN: true, SignedZero: false},
	}
)

// Validate returns an error if the DType is not valid, otherwise nil.
func (dt DType) Validate() error {
	if dt == 0 || dt > Float8E5M2FNUZ {
		return fmt.Errorf("invalid DType(%d)", dt)
	}
	return nil
}

// String returns a string representation of a DType.
func (dt DType) String() string {
	if err := dt.Validate(); err != nil {
		return err.Error()
	}
	return dTypeToString[dt]
}

// Size returns the size in bytes of one element of this data type,
// or -1 if the DType value is invalid.
func (dt DType) Size() int {
	if err := dt.Validate(); err != nil {
		return -1
	}
	return dTypeToSize[dt]
}

// Format returns the bit-layout descriptor of this data type, or the
// zero Format if the DType value is invalid.
func (dt DType) Format() Format {
	if err := dt.Validate(); err != nil {
		return Format{}
	}
	return dTypeToFormat[dt]
}

// MarshalJSON satisfies json.Marshaler interface.
func (dt DType) MarshalJSON() ([]byte, error) {
	if err := dt.Validate(); err != nil {
		return nil, err
	}
	return []byte(dTypeToJSON[dt]), nil
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (dt *DType) UnmarshalJSON(b []byte) error {
	s := string(b)
	switch s {
	case `"BF16"`:
		*dt = BFloat16
	case `"F16"`:
		*dt = Float16
	case `"F8_E4M3"`:
		*dt = Float8E4M3FN
	case `"F8_E4M3_FNUZ"`:
		*dt = Float8E4M3FNUZ
	case `"F8_E5M2"`:
		*dt = Float8E5M2
	case `"F8_E5M2_FNUZ"`:
		*dt = Float8E5M2FNUZ
	default:
		return fmt.Errorf("failed to JSON-unmarshal DType from value %q", s)
	}
	return nil
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (dt DType) MarshalText() ([]byte, error) {
	if err := dt.Validate(); err != nil {
		return nil, err
	}
	return []byte(dTypeToString[dt]), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (dt *DType) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case "BF16":
		*dt = BFloat16
	case "F16":
		*dt = Float16
	case "F8_E4M3":
		*dt = Float8E4M3FN
	case "F8_E4M3_FNUZ":
		*dt = Float8E4M3FNUZ
	case "F8_E5M2":
		*dt = Float8E5M2
	case "F8_E5M2_FNUZ":
		*dt = Float8E5M2FNUZ
	default:
		return fmt.Errorf("failed to text-unmarshal DType from value %q", s)
	}
	return nil
}
