// Package floatx describes the compact floating-point element types
// used by tensor and array code: bfloat16, IEEE binary16, and four
// 8-bit formats. The numeric types themselves live in the bfloat16,
// float16 and float8 subpackages; this package holds the format
// descriptors and the DType tags surrounding infrastructure uses to
// identify them.
package floatx

import "golang.org/x/exp/constraints"

// Value is satisfied by every element type in this module: the sole
// state is a raw bit pattern, and the decoded value is reported as the
// float32 reference representation.
type Value interface {
	Float32() float32
}

// Float decodes v into any floating-point type.
func Float[T constraints.Float](v Value) T {
	return T(v.Float32())
}
