package matrix

import (
	"fmt"
	"math/big"
)

// denseErrorf wraps an underlying error with Dense method context.
// Example message shape: "Dense.At(3,7): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of *big.Int values.
// r, c are dimensions; data holds r*c entries in row-major order, one
// *big.Int per cell (never nil once allocated — NewDense fills every slot).
type Dense struct {
	r, c int
	data []*big.Int // flat backing storage, len == r*c, row-major
}

// NewDense creates an r×c Dense matrix initialized to zero. Zero rows or
// zero columns are allowed (a boundary matrix out of the empty simplex
// has zero rows, and the top-dimension boundary matrix has zero columns);
// only negative dimensions are rejected with ErrInvalidDimensions.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]*big.Int, rows*cols)
	for i := range data {
		data[i] = new(big.Int)
	}
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows builds a Dense from row-major literal int64 rows. Every
// row must have the same length. Intended for tests and small fixtures.
func NewDenseFromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has length %d, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*cols+j].SetInt64(v)
		}
	}
	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// Complexity: O(n) in the bit-length of the entry (big.Int.Set cost).
func (m *Dense) At(row, col int) (*big.Int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(m.data[off]), nil
}

// Set copies v into (row, col). The matrix never aliases the caller's v.
func (m *Dense) Set(row, col int, v *big.Int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[off].Set(v)
	return nil
}

// at returns the live *big.Int slot at (row,col) without copying — for
// internal callers only (snf's update primitives) that intend to mutate
// in place; out of the public API so external callers can't alias state.
func (m *Dense) at(row, col int) *big.Int {
	return m.data[row*m.c+col]
}

// IsZero reports whether every entry of m is zero.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v.Sign() != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether m and other have the same shape and entries.
func (m *Dense) Equal(other *Dense) bool {
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(other.data[i]) != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) allocations plus the cost of copying each entry.
func (m *Dense) Clone() *Dense {
	data := make([]*big.Int, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Int).Set(v)
	}
	return &Dense{r: m.r, c: m.c, data: data}
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}
	return m, nil
}

// Mul computes the matrix product a×b, used by tests to verify the SNF
// postcondition S·A·T == M (snf's own runtime check does not call it).
// Complexity: O(r*n*c) big.Int multiply-adds.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d * %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	acc := new(big.Int)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av := a.data[i*a.c+k]
			if av.Sign() == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				acc.Mul(av, b.data[k*b.c+j])
				res.data[i*b.c+j].Add(res.data[i*b.c+j], acc)
			}
		}
	}
	return res, nil
}

// Determinant computes det(m) via cofactor expansion. Only ever called in
// tests, to confirm small S/T factors are unimodular (|det| == 1); not
// used anywhere on the hot path.
// Complexity: O(n!) — intentionally naive, bounded to tiny n by callers.
func (m *Dense) Determinant() (*big.Int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	return determinant(m.data, m.r), nil
}

func determinant(data []*big.Int, n int) *big.Int {
	if n == 0 {
		return big.NewInt(1) // det of the empty matrix, by convention
	}
	if n == 1 {
		return new(big.Int).Set(data[0])
	}
	det := new(big.Int)
	sub := make([]*big.Int, (n-1)*(n-1))
	for col := 0; col < n; col++ {
		// build minor excluding row 0 and column col
		idx := 0
		for i := 1; i < n; i++ {
			for j := 0; j < n; j++ {
				if j == col {
					continue
				}
				sub[idx] = data[i*n+j]
				idx++
			}
		}
		minor := determinant(sub, n-1)
		term := new(big.Int).Mul(data[col], minor)
		if col%2 == 1 {
			term.Neg(term)
		}
		det.Add(det, term)
	}
	return det
}

// String renders m row by row for debugging.
func (m *Dense) String() string {
	out := ""
	for i := 0; i < m.r; i++ {
		out += "["
		for j := 0; j < m.c; j++ {
			out += m.data[i*m.c+j].String()
			if j+1 < m.c {
				out += ", "
			}
		}
		out += "]\n"
	}
	return out
}
