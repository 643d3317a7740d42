package matrix

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseRejectsBadShape(t *testing.T) {
	_, err := NewDense(3, -1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewDense(-1, 3)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewDenseAllowsZeroDimension(t *testing.T) {
	m, err := NewDense(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.True(t, m.IsZero())

	m2, err := NewDense(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m2.Cols())
}

func TestDeterminantOfEmptyMatrix(t *testing.T) {
	m, err := NewDense(0, 0)
	require.NoError(t, err)
	d, err := m.Determinant()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), d)
}

func TestDenseAtSetRoundTrip(t *testing.T) {
	m, err := NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, big.NewInt(7)))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), v)

	// other cells remain zero
	z, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0), z)
}

func TestDenseAtOutOfRange(t *testing.T) {
	m, _ := NewDense(2, 2)
	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDenseSetDoesNotAliasCaller(t *testing.T) {
	m, _ := NewDense(1, 1)
	v := big.NewInt(5)
	require.NoError(t, m.Set(0, 0, v))
	v.SetInt64(99) // mutate caller's copy
	got, _ := m.At(0, 0)
	assert.Equal(t, big.NewInt(5), got, "Dense.Set must copy, not alias")
}

func TestDenseClone(t *testing.T) {
	m, _ := NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, big.NewInt(100)))
	orig, _ := m.At(0, 0)
	assert.Equal(t, big.NewInt(1), orig, "mutating clone must not affect original")
	assert.True(t, m.Equal(m))
	assert.False(t, m.Equal(c))
}

func TestIdentity(t *testing.T) {
	id, err := Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := id.At(i, j)
			if i == j {
				assert.Equal(t, big.NewInt(1), v)
			} else {
				assert.Equal(t, big.NewInt(0), v)
			}
		}
	}
}

func TestMul(t *testing.T) {
	a, _ := NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := NewDenseFromRows([][]int64{{5, 6}, {7, 8}})
	got, err := Mul(a, b)
	require.NoError(t, err)
	want, _ := NewDenseFromRows([][]int64{{19, 22}, {43, 50}})
	assert.True(t, got.Equal(want))

	_, err = Mul(a, nil)
	assert.ErrorIs(t, err, ErrNilMatrix)

	c, _ := NewDense(3, 1)
	_, err = Mul(a, c)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDeterminant(t *testing.T) {
	m, _ := NewDenseFromRows([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	d, err := m.Determinant()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(-3), d)

	notSquare, _ := NewDense(2, 3)
	_, err = notSquare.Determinant()
	assert.ErrorIs(t, err, ErrNonSquare)
}
