// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm should panic on
// user-triggered error conditions. Panics are reserved for programmer
// errors in private helpers (if any).
package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still
// use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative (rows < 0 or cols < 0 for NewDense). Zero is allowed: an
	// empty boundary matrix (zero rows or zero columns) is a legitimate
	// shape at the extremes of a simplicial complex's dimension range.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. two-row/two-column updates addressing rows or
	// columns that don't both exist in the target matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was used where a live
	// receiver or argument was required.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
