package simplicial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technosentience/simp-hom-calc/matrix"
)

func TestBoundaryMatrixZeroRowsAtDimZero(t *testing.T) {
	c, err := NewComplex([][]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	bm, err := c.BoundaryMatrix(0)
	require.NoError(t, err)
	assert.Equal(t, 0, bm.Mat.Rows())
	assert.Equal(t, 3, bm.Mat.Cols())
}

func TestBoundaryMatrixZeroColsAboveDimension(t *testing.T) {
	c, err := NewComplex([][]int{{0, 1, 2}})
	require.NoError(t, err)

	bm, err := c.BoundaryMatrix(c.Dimension() + 1)
	require.NoError(t, err)
	assert.Equal(t, 0, bm.Mat.Cols())
	assert.Equal(t, 1, bm.Mat.Rows())
}

// TestBoundarySquaredIsZero checks the universal property ∂_{k-1} · ∂_k
// = 0 for all k >= 1, using the filled-triangle fixture where boundary
// matrices have matching dimensions down the chain.
func TestBoundarySquaredIsZero(t *testing.T) {
	c, err := NewComplex([][]int{{0, 1, 2}})
	require.NoError(t, err)

	for k := 1; k <= c.Dimension(); k++ {
		bk, err := c.BoundaryMatrix(k)
		require.NoError(t, err)
		bkMinus1, err := c.BoundaryMatrix(k - 1)
		require.NoError(t, err)

		// bk's rows are (k-1)-simplices, same set bkMinus1's columns index;
		// since simplicesOfDim is deterministic per call, re-derive bkMinus1
		// against bk's own row order by rebuilding the product directly.
		require.Equal(t, len(bk.RowSimplices), len(bkMinus1.ColSimplices))

		prod, err := matrix.Mul(bkMinus1.Mat, bk.Mat)
		require.NoError(t, err)
		assert.True(t, prod.IsZero(), "boundary^2 must vanish at k=%d", k)
	}
}

func TestBoundaryMatrixTriangleSigns(t *testing.T) {
	c, err := NewComplex([][]int{{0, 1, 2}})
	require.NoError(t, err)

	bm, err := c.BoundaryMatrix(2)
	require.NoError(t, err)
	require.Equal(t, 3, bm.Mat.Rows())
	require.Equal(t, 1, bm.Mat.Cols())

	colSum := 0
	for i := 0; i < bm.Mat.Rows(); i++ {
		v, err := bm.Mat.At(i, 0)
		require.NoError(t, err)
		assert.Contains(t, []int64{1, -1}, v.Int64())
		colSum += int(v.Int64())
	}
	// +1 -1 +1 by construction (removing vertices 0,1,2 in order).
	assert.Equal(t, 1, colSum)
}
