package matrix

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeftUpdate(t *testing.T) {
	m, _ := NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	// row0 <- 1*row0 + 1*row1 ; row1 <- 0*row0 + 1*row1 (should leave row1 unchanged)
	require.NoError(t, LeftUpdate(m, 0, 1, big.NewInt(1), big.NewInt(1), big.NewInt(0), big.NewInt(1)))
	want, _ := NewDenseFromRows([][]int64{{4, 6}, {3, 4}})
	assert.True(t, m.Equal(want))
}

func TestLeftUpdateRejectsSameRow(t *testing.T) {
	m, _ := NewDense(2, 2)
	err := LeftUpdate(m, 0, 0, big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(1))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestRightUpdate(t *testing.T) {
	m, _ := NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	// col0 <- 1*col0 + 0*col1 ; col1 <- 1*col0 + 1*col1
	require.NoError(t, RightUpdate(m, 0, 1, big.NewInt(1), big.NewInt(1), big.NewInt(0), big.NewInt(1)))
	want, _ := NewDenseFromRows([][]int64{{1, 3}, {3, 7}})
	assert.True(t, m.Equal(want))
}

func TestSwapRowsAndCols(t *testing.T) {
	m, _ := NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, SwapRows(m, 0, 1))
	want, _ := NewDenseFromRows([][]int64{{3, 4}, {1, 2}})
	assert.True(t, m.Equal(want))

	require.NoError(t, SwapCols(m, 0, 1))
	want2, _ := NewDenseFromRows([][]int64{{4, 3}, {2, 1}})
	assert.True(t, m.Equal(want2))
}

func TestNegateRowAndCol(t *testing.T) {
	m, _ := NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, NegateRow(m, 0))
	want, _ := NewDenseFromRows([][]int64{{-1, -2}, {3, 4}})
	assert.True(t, m.Equal(want))

	require.NoError(t, NegateCol(m, 1))
	want2, _ := NewDenseFromRows([][]int64{{-1, 2}, {3, -4}})
	assert.True(t, m.Equal(want2))
}

func TestLeftUpdatePreservesUnimodularCombination(t *testing.T) {
	// det([[1,1],[-1,0]]) = 1*0 - 1*(-1) = 1, a unimodular combination.
	m, _ := NewDenseFromRows([][]int64{{2, 0}, {0, 3}})
	require.NoError(t, LeftUpdate(m, 0, 1, big.NewInt(1), big.NewInt(1), big.NewInt(-1), big.NewInt(0)))
	// newRow0 = row0 + row1 = [2,3]; newRow1 = -row0 + 0*row1 = [-2, 0]
	want, _ := NewDenseFromRows([][]int64{{2, 3}, {-2, 0}})
	assert.True(t, m.Equal(want))
}
