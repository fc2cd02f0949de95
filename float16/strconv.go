package float16

import (
	"fmt"
	"strconv"
)

func (x Float16) String() string {
	return x.Text('g', -1)
}

// Text returns the string form of x in the given strconv format.
func (x Float16) Text(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 8), fmt, prec))
}

// Append appends the string form of x to buf and returns the extended
// buffer. The value is decoded to float32 and formatted as such.
func (x Float16) Append(buf []byte, fmt byte, prec int) []byte {
	switch {
	case x.IsNaN():
		return append(buf, "NaN"...)
	case x == uvinf:
		return append(buf, "+Inf"...)
	case x == uvneginf:
		return append(buf, "-Inf"...)
	}
	return strconv.AppendFloat(buf, x.Float64(), fmt, prec, 32)
}

var _ fmt.Formatter = Float16(0)

// Format implements [fmt.Formatter].
func (x Float16) Format(s fmt.State, verb rune) {
	if x.IsNaN() || x.IsInf(0) {
		s.Write(x.Append(nil, 'g', -1))
		return
	}

	var prefix []byte
	var data []byte

	// sign
	if x&signMask16 != 0 {
		prefix = append(prefix, '-')
		x &^= signMask16
	} else {
		if s.Flag('+') {
			prefix = append(prefix, '+')
		} else if s.Flag(' ') {
			prefix = append(prefix, ' ')
		}
	}

	switch verb {
	case 'b', 'e', 'E', 'f', 'g', 'G', 'x', 'X':
		if prec, ok := s.Precision(); ok {
			data = x.Append(data, byte(verb), prec)
		} else {
			data = x.Append(data, byte(verb), -1)
		}
	case 'v':
		data = x.Append(data, 'g', -1)
	default:
		fmt.Fprintf(s, "%%!%c(float16.Float16=%s)", verb, x.String())
		return
	}

	if w, ok := s.Width(); ok {
		var buf [1]byte
		if s.Flag('-') {
			s.Write(prefix)
			s.Write(data)
			buf[0] = ' '
			for i := len(data); i < w; i++ {
				s.Write(buf[:1])
			}
		} else {
			buf[0] = ' '
			for i := len(data); i < w; i++ {
				s.Write(buf[:1])
			}
			s.Write(prefix)
			s.Write(data)
		}
		return
	}

	if len(prefix) > 0 {
		s.Write(prefix)
	}
	s.Write(data)
}
