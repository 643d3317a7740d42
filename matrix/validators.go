// Package matrix provides core matrix operation validators to ensure
// matrices meet required shape constraints before computation.
package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the Dense is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return fmt.Errorf("ValidateNotNil: %w", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Stage 1 (Validate): nil-check via ValidateNotNil.
// Stage 2 (Execute): compare rows vs cols.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d not square: %w", m.r, m.c, ErrNonSquare))
	}
	return nil
}

// validateRowPair checks that i and j are distinct, in-range row indices.
// Shared by LeftUpdate and any future row-pair primitive.
func validateRowPair(m *Dense, i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("validateRowPair", err)
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return validatorErrorf("validateRowPair",
			fmt.Errorf("row %d,%d out of [0,%d): %w", i, j, m.r, ErrOutOfRange))
	}
	if i == j {
		return validatorErrorf("validateRowPair",
			fmt.Errorf("rows must be distinct, got %d twice: %w", i, ErrDimensionMismatch))
	}
	return nil
}

// validateColPair checks that i and j are distinct, in-range column indices.
func validateColPair(m *Dense, i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("validateColPair", err)
	}
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return validatorErrorf("validateColPair",
			fmt.Errorf("col %d,%d out of [0,%d): %w", i, j, m.c, ErrOutOfRange))
	}
	if i == j {
		return validatorErrorf("validateColPair",
			fmt.Errorf("cols must be distinct, got %d twice: %w", i, ErrDimensionMismatch))
	}
	return nil
}
