// Package matrix provides the two-dimensional unimodular update primitives
// the Smith Normal Form reduction builds on: LeftUpdate replaces two rows
// with a fixed linear combination of themselves, RightUpdate does the same
// for two columns. The Smith Normal Form engine in package snf is the only
// caller that applies these with coefficient matrices it has not itself
// verified to have determinant ±1 — callers elsewhere are responsible for
// passing unimodular coefficients whenever unimodularity of the target
// must be preserved.
package matrix

import "math/big"

// operation name constants for unified error wrapping.
const (
	opLeftUpdate  = "LeftUpdate"
	opRightUpdate = "RightUpdate"
)

// LeftUpdate replaces rows i and j of m in place with
//
//	row_i ← a*row_i + b*row_j
//	row_j ← c*row_i + d*row_j
//
// (the right-hand sides use the *original* row_i, row_j).
// The caller must pass a, b, c, d with determinant ±1 to preserve
// unimodularity of m; LeftUpdate itself does not check this.
//
// Contract: i != j, both in [0, m.Rows()).
// Determinism: fixed column-major sweep 0..cols-1.
// Complexity: O(cols) big.Int multiply-adds.
func LeftUpdate(m *Dense, i, j int, a, b, c, d *big.Int) error {
	if err := validateRowPair(m, i, j); err != nil {
		return validatorErrorf(opLeftUpdate, err)
	}

	newI, newJ := new(big.Int), new(big.Int)
	t1, t2 := new(big.Int), new(big.Int)
	for col := 0; col < m.c; col++ {
		xi := m.at(i, col)
		xj := m.at(j, col)
		// newI = a*xi + b*xj ; newJ = c*xi + d*xj
		t1.Mul(a, xi)
		t2.Mul(b, xj)
		newI.Add(t1, t2)
		t1.Mul(c, xi)
		t2.Mul(d, xj)
		newJ.Add(t1, t2)
		xi.Set(newI)
		xj.Set(newJ)
	}
	return nil
}

// RightUpdate replaces columns i and j of m in place with
//
//	col_i ← a*col_i + c*col_j
//	col_j ← b*col_i + d*col_j
//
// (the right-hand sides use the *original* col_i, col_j).
// The caller must pass a, b, c, d with determinant ±1 to preserve
// unimodularity of m; RightUpdate itself does not check this.
//
// Contract: i != j, both in [0, m.Cols()).
// Determinism: fixed row-major sweep 0..rows-1.
// Complexity: O(rows) big.Int multiply-adds.
func RightUpdate(m *Dense, i, j int, a, b, c, d *big.Int) error {
	if err := validateColPair(m, i, j); err != nil {
		return validatorErrorf(opRightUpdate, err)
	}

	newI, newJ := new(big.Int), new(big.Int)
	t1, t2 := new(big.Int), new(big.Int)
	for row := 0; row < m.r; row++ {
		xi := m.at(row, i)
		xj := m.at(row, j)
		// newI = a*xi + c*xj ; newJ = b*xi + d*xj
		t1.Mul(a, xi)
		t2.Mul(c, xj)
		newI.Add(t1, t2)
		t1.Mul(b, xi)
		t2.Mul(d, xj)
		newJ.Add(t1, t2)
		xi.Set(newI)
		xj.Set(newJ)
	}
	return nil
}

// SwapRows exchanges rows i and j of m in place. Equivalent to
// LeftUpdate(m, i, j, 0,1,1,0) but avoids the multiply-add overhead for
// the common pivot-selection swap in snf's Step P.
func SwapRows(m *Dense, i, j int) error {
	if err := validateRowPair(m, i, j); err != nil {
		return validatorErrorf("SwapRows", err)
	}
	for col := 0; col < m.c; col++ {
		off1, off2 := i*m.c+col, j*m.c+col
		m.data[off1], m.data[off2] = m.data[off2], m.data[off1]
	}
	return nil
}

// SwapCols exchanges columns i and j of m in place. Equivalent to
// RightUpdate(m, i, j, 0,1,1,0) but avoids the multiply-add overhead.
func SwapCols(m *Dense, i, j int) error {
	if err := validateColPair(m, i, j); err != nil {
		return validatorErrorf("SwapCols", err)
	}
	for row := 0; row < m.r; row++ {
		off1, off2 := row*m.c+i, row*m.c+j
		m.data[off1], m.data[off2] = m.data[off2], m.data[off1]
	}
	return nil
}

// NegateRow negates row i of m in place (used by snf's Step N).
func NegateRow(m *Dense, i int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("NegateRow", err)
	}
	if i < 0 || i >= m.r {
		return validatorErrorf("NegateRow", ErrOutOfRange)
	}
	for col := 0; col < m.c; col++ {
		v := m.at(i, col)
		v.Neg(v)
	}
	return nil
}

// NegateCol negates column i of m in place (used by snf's Step N).
func NegateCol(m *Dense, i int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("NegateCol", err)
	}
	if i < 0 || i >= m.c {
		return validatorErrorf("NegateCol", ErrOutOfRange)
	}
	for row := 0; row < m.r; row++ {
		v := m.at(row, i)
		v.Neg(v)
	}
	return nil
}
