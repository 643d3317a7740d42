package bigint

import (
	"errors"
	"math"
)

// ErrOverflow indicates a parsed vertex index does not fit in the
// platform's int type. Narrowing fails cleanly with this sentinel rather
// than wrapping or truncating.
var ErrOverflow = errors.New("bigint: value overflows platform int")

// NarrowUint64 narrows u into the platform int type, returning
// ErrOverflow if u exceeds math.MaxInt. Any value fitting in a 64-bit
// unsigned integer is accepted as input and narrowed from there.
func NarrowUint64(u uint64) (int, error) {
	if u > uint64(math.MaxInt) {
		return 0, ErrOverflow
	}
	return int(u), nil
}
