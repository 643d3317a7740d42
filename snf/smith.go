package snf

import (
	"fmt"
	"math/big"

	"github.com/technosentience/simp-hom-calc/bigint"
	"github.com/technosentience/simp-hom-calc/matrix"
)

// SmithNormalForm computes the Smith Normal Form of m: unimodular S, T and
// diagonal A such that m = S·A·T.
//
// Contract:
//   - m non-nil.
//   - S is rows(m)×rows(m), T is cols(m)×cols(m), both unimodular.
//   - A has m's shape; off-diagonal entries are zero; nonzero diagonal
//     entries are non-negative and satisfy A[i,i] | A[i+1,i+1]; any zero
//     diagonal entries follow strictly after the nonzero ones.
//
// Determinism & Performance:
//   - One pass of Step P+R for i = 0..rows-1, then Step D across all
//     (i0 < i1) diagonal pairs, then Step N. Order is fixed and matches
//     the original Rust implementation exactly.
//
// Complexity: O(min(r,c)·(r+c)) row/column operations, each O(r) or O(c)
// big.Int multiply-adds; intermediate coefficients are unbounded
// (arbitrary precision, chosen deliberately over a fixed-width type).
//
// AI-Hints:
//   - SmithNormalForm owns a fresh copy of m (via Clone) and initializes S,
//     T to identity — the caller's m is never mutated.
//   - Pass WithMaxIterations to raise the defensive cap for pathologically
//     large test matrices; the default is generous for any realistic
//     boundary matrix.
func SmithNormalForm(m *matrix.Dense, opts ...Option) (s, a, t *matrix.Dense, err error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, nil, err
	}
	o := NewOptions(opts...)

	a = m.Clone()
	s, err = matrix.Identity(m.Rows())
	if err != nil {
		return nil, nil, nil, err
	}
	t, err = matrix.Identity(m.Cols())
	if err != nil {
		return nil, nil, nil, err
	}

	if err := smithNormalFormInPlace(s, a, t, o); err != nil {
		return nil, nil, nil, err
	}
	if err := verifyInvariants(a); err != nil {
		return nil, nil, nil, err
	}
	return s, a, t, nil
}

// smithNormalFormInPlace runs Steps P, R, D, N over (s, a, t) in place.
func smithNormalFormInPlace(s, a, t *matrix.Dense, o Options) error {
	rows, cols := a.Rows(), a.Cols()

	// Step P+R: one pivoting-and-reduction pass per row, in order.
	j := 0
	for i := 0; i < rows; i++ {
		nextJ, ok, err := reduceRow(s, a, t, i, j, o)
		if err != nil {
			return err
		}
		if ok {
			j = nextJ
		}
	}

	// Step D: enforce the divisibility chain across all diagonal pairs.
	limit := rows
	if cols < limit {
		limit = cols
	}
	for i1 := 1; i1 < limit; i1++ {
		if err := reduceDiagonal(s, a, t, i1); err != nil {
			return err
		}
	}

	// Step N: normalize sign so every diagonal entry is non-negative.
	for i := 0; i < limit; i++ {
		v, err := a.At(i, i)
		if err != nil {
			return err
		}
		if v.Sign() < 0 {
			if err := matrix.NegateRow(a, i); err != nil {
				return err
			}
			if err := matrix.NegateCol(s, i); err != nil {
				return err
			}
		}
	}
	return nil
}

// makePivot implements Step P: find the leftmost column j >= startJ with a
// nonzero entry in some row i' >= i, bring that entry to (i,i) via a row
// swap (paired with a column swap on S) and a column swap (paired with a
// row swap on T), and return j+1 for the next row's search start.
// Returns ok=false if no such column exists (the row is finished).
func makePivot(s, a, t *matrix.Dense, i, startJ int) (nextJ int, ok bool, err error) {
	rows := a.Rows()
	j := -1
	pivotRow := -1
	for col := startJ; col < a.Cols(); col++ {
		for row := i; row < rows; row++ {
			v, err := a.At(row, col)
			if err != nil {
				return 0, false, err
			}
			if v.Sign() != 0 {
				j = col
				pivotRow = row
				break
			}
		}
		if j != -1 {
			break
		}
	}
	if j == -1 {
		return 0, false, nil
	}

	if i != pivotRow {
		if err := matrix.SwapRows(a, i, pivotRow); err != nil {
			return 0, false, err
		}
		if err := matrix.SwapCols(s, i, pivotRow); err != nil {
			return 0, false, err
		}
	}
	if i != j {
		if err := matrix.SwapCols(a, i, j); err != nil {
			return 0, false, err
		}
		if err := matrix.SwapRows(t, i, j); err != nil {
			return 0, false, err
		}
	}
	return j + 1, true, nil
}

// zeroRowEntry implements the row half of Step R: clears a[i1,i0] using a
// Bezout combination of rows i0 and i1, applying the matched unimodular
// update to S's columns so a = s·A·t stays invariant.
func zeroRowEntry(s, a *matrix.Dense, i0, i1 int) error {
	pivot, err := a.At(i0, i0)
	if err != nil {
		return err
	}
	below, err := a.At(i1, i0)
	if err != nil {
		return err
	}
	g, x, y := bigint.ExtendedGCD(pivot, below)
	z, err := bigint.ExactDiv(below, g)
	if err != nil {
		return err
	}
	w, err := bigint.ExactDiv(pivot, g)
	if err != nil {
		return err
	}
	negZ := new(big.Int).Neg(z)
	if err := matrix.LeftUpdate(a, i0, i1, x, y, negZ, w); err != nil {
		return err
	}
	negY := new(big.Int).Neg(y)
	return matrix.RightUpdate(s, i0, i1, w, negY, z, x)
}

// zeroColumnEntry implements the column half of Step R: clears a[i0,i1]
// using a Bezout combination of columns i0 and i1, applying the matched
// unimodular update to T's rows.
func zeroColumnEntry(a, t *matrix.Dense, i0, i1 int) error {
	pivot, err := a.At(i0, i0)
	if err != nil {
		return err
	}
	right, err := a.At(i0, i1)
	if err != nil {
		return err
	}
	g, x, y := bigint.ExtendedGCD(pivot, right)
	z, err := bigint.ExactDiv(right, g)
	if err != nil {
		return err
	}
	w, err := bigint.ExactDiv(pivot, g)
	if err != nil {
		return err
	}
	negZ := new(big.Int).Neg(z)
	if err := matrix.RightUpdate(a, i0, i1, x, negZ, y, w); err != nil {
		return err
	}
	negY := new(big.Int).Neg(y)
	return matrix.LeftUpdate(t, i0, i1, w, z, negY, x)
}

// reduceRow implements Step R in full for pivot row i0: select a pivot via
// makePivot, then alternately clear below-diagonal and right-of-diagonal
// entries until both are clean. Each iteration strictly shrinks |a[i0,i0]|
// or eliminates an off-diagonal entry, so the loop terminates;
// MaxIterations is a defensive cap only.
func reduceRow(s, a, t *matrix.Dense, i0, startJ int, o Options) (nextJ int, ok bool, err error) {
	nextJ, ok, err = makePivot(s, a, t, i0, startJ)
	if err != nil || !ok {
		return nextJ, ok, err
	}

	for iter := 0; ; iter++ {
		if iter >= o.MaxIterations {
			return 0, false, fmt.Errorf("reduceRow(i0=%d): %w", i0, ErrNotConverged)
		}

		i1, err := firstNonzeroBelow(a, i0)
		if err != nil {
			return 0, false, err
		}
		if i1 >= 0 {
			if err := zeroRowEntry(s, a, i0, i1); err != nil {
				return 0, false, err
			}
			continue
		}

		j1, err := firstNonzeroRight(a, i0)
		if err != nil {
			return 0, false, err
		}
		if j1 >= 0 {
			if err := zeroColumnEntry(a, t, i0, j1); err != nil {
				return 0, false, err
			}
			continue
		}

		break
	}
	return nextJ, ok, nil
}

// firstNonzeroBelow returns the smallest row index > i0 with a nonzero
// entry in column i0, or -1 if none exists.
func firstNonzeroBelow(a *matrix.Dense, i0 int) (int, error) {
	for row := i0 + 1; row < a.Rows(); row++ {
		v, err := a.At(row, i0)
		if err != nil {
			return -1, err
		}
		if v.Sign() != 0 {
			return row, nil
		}
	}
	return -1, nil
}

// firstNonzeroRight returns the smallest column index > i0 with a nonzero
// entry in row i0, or -1 if none exists.
func firstNonzeroRight(a *matrix.Dense, i0 int) (int, error) {
	for col := i0 + 1; col < a.Cols(); col++ {
		v, err := a.At(i0, col)
		if err != nil {
			return -1, err
		}
		if v.Sign() != 0 {
			return col, nil
		}
	}
	return -1, nil
}

// reduceDiagonal implements Step D for the pair (i0, i1) with i0 < i1:
// replaces (a[i0,i0], a[i1,i1]) by (gcd, lcm) for every i0 < i1, using a
// combined update whose T/S-side coefficient matrices have determinant -1
// (still unimodular — this repo keeps that exact formula rather than
// substituting a determinant +1 alternative; see DESIGN.md).
func reduceDiagonal(s, a, t *matrix.Dense, i1 int) error {
	for i0 := 0; i0 < i1; i0++ {
		p0, err := a.At(i0, i0)
		if err != nil {
			return err
		}
		p1, err := a.At(i1, i1)
		if err != nil {
			return err
		}
		g, x, y := bigint.ExtendedGCD(p0, p1)
		if g.Sign() == 0 {
			continue
		}
		z, err := bigint.ExactDiv(p1, g)
		if err != nil {
			return err
		}
		w, err := bigint.ExactDiv(p0, g)
		if err != nil {
			return err
		}

		one := big.NewInt(1)
		yz := new(big.Int).Mul(y, z)
		yzMinus1 := new(big.Int).Sub(yz, one)
		oneMinusYZ := new(big.Int).Sub(one, yz)
		xw := new(big.Int).Mul(x, w)
		oneMinusXW := new(big.Int).Sub(one, xw)
		negW := new(big.Int).Neg(w)
		negOne := big.NewInt(-1)
		negX := new(big.Int).Neg(x)

		if err := matrix.LeftUpdate(a, i0, i1, one, y, z, yzMinus1); err != nil {
			return err
		}
		if err := matrix.RightUpdate(s, i0, i1, oneMinusYZ, y, z, negOne); err != nil {
			return err
		}
		if err := matrix.RightUpdate(a, i0, i1, x, oneMinusXW, one, negW); err != nil {
			return err
		}
		if err := matrix.LeftUpdate(t, i0, i1, w, oneMinusXW, one, negX); err != nil {
			return err
		}
	}
	return nil
}

// verifyInvariants is the defensive postcondition check: A must be
// diagonal with non-negative entries forming a divisibility chain, and
// zero diagonal entries must follow strictly after the nonzero ones. It
// never calls Determinant or Mul (too expensive to run on every
// SmithNormalForm call for large matrices) — only O(rows*cols) reads.
func verifyInvariants(a *matrix.Dense) error {
	rows, cols := a.Rows(), a.Cols()
	limit := rows
	if cols < limit {
		limit = cols
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if i == j {
				continue
			}
			v, err := a.At(i, j)
			if err != nil {
				return err
			}
			if v.Sign() != 0 {
				return fmt.Errorf("verifyInvariants: a[%d,%d] = %s off-diagonal: %w", i, j, v, ErrInvariantViolated)
			}
		}
	}

	var prev *big.Int
	seenZero := false
	for i := 0; i < limit; i++ {
		v, err := a.At(i, i)
		if err != nil {
			return err
		}
		if v.Sign() < 0 {
			return fmt.Errorf("verifyInvariants: a[%d,%d] = %s negative: %w", i, i, v, ErrInvariantViolated)
		}
		if v.Sign() == 0 {
			seenZero = true
			continue
		}
		if seenZero {
			return fmt.Errorf("verifyInvariants: nonzero a[%d,%d] = %s after a zero diagonal entry: %w", i, i, v, ErrInvariantViolated)
		}
		if prev != nil && new(big.Int).Mod(v, prev).Sign() != 0 {
			return fmt.Errorf("verifyInvariants: a[%d,%d] = %s does not divide by previous invariant %s: %w", i, i, v, prev, ErrInvariantViolated)
		}
		prev = v
	}
	return nil
}
