package imei

import "strings"

// IMEI is a value object wrapping a checksum-valid IMEI string. It is always
// valid in memory: the zero value is empty and reports IsZero, and every other
// instance was built by New against the exact text it holds.
// The type is comparable; two values are equal iff their digits are equal.
type IMEI struct {
	value string
}

// New validates s and wraps it. The text is stored unchanged: no trimming,
// no normalization. On failure it returns the zero IMEI and ErrInvalidIMEI,
// leaving s for the caller to reuse or report.
func New(s string) (IMEI, error) {
	if !Valid(s) {
		return IMEI{}, ErrInvalidIMEI
	}
	return IMEI{value: s}, nil
}

// MustNew is New but panics on invalid input. Use for constants and tests.
func MustNew(s string) IMEI {
	i, err := New(s)
	if err != nil {
		panic(err)
	}
	return i
}

// String returns the wrapped digits exactly as they were validated. Go
// strings are immutable values, so this is also the "unwrap": the result
// carries no further guarantee and must be re-validated before re-wrapping.
func (i IMEI) String() string { return i.value }

// IsZero reports whether i is the zero value, which holds no valid IMEI.
func (i IMEI) IsZero() bool { return i.value == "" }

// Compare orders IMEIs lexicographically. Both operands are 15-digit strings,
// so this coincides with numeric order.
func (i IMEI) Compare(other IMEI) int {
	return strings.Compare(i.value, other.value)
}
