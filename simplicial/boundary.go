package simplicial

import (
	"math/big"

	"github.com/technosentience/simp-hom-calc/matrix"
)

// BoundaryMatrix wraps a matrix.Dense as the signed incidence matrix ∂_k
// between a complex's (k-1)-simplices (rows) and k-simplices (columns),
// mirroring the way matrix/impl_incidence.go wraps a graph's incidence
// matrix with a row index map and a column-aligned list: Mat holds the
// entries, RowSimplices and ColSimplices fix the enumeration used to
// build it, stable for the lifetime of one call.
type BoundaryMatrix struct {
	Mat          *matrix.Dense
	RowSimplices []Simplex // (k-1)-simplices, aligned to Mat's rows
	ColSimplices []Simplex // k-simplices, aligned to Mat's columns
}

// BoundaryMatrix builds ∂_k: for each column σ with popcount k+1, iterate
// its codimension-1 faces in increasing order of the removed vertex's bit
// position; the r-th removed vertex (0-indexed) yields face σ' at row
// index i, and entry (i, col) = (-1)^r. For k = 0 the target set is
// empty and the matrix has zero rows.
func (c *Complex) BoundaryMatrix(k int) (*BoundaryMatrix, error) {
	rowSimplices := c.simplicesOfDim(k - 1)
	colSimplices := c.simplicesOfDim(k)

	rowIndex := make(map[string]int, len(rowSimplices))
	for i, s := range rowSimplices {
		rowIndex[s.key()] = i
	}

	mat, err := matrix.NewDense(len(rowSimplices), len(colSimplices))
	if err != nil {
		return nil, err
	}

	if len(rowSimplices) > 0 {
		for col, s := range colSimplices {
			iterOverSubsets(s, func(face Simplex, positive bool) {
				i, ok := rowIndex[face.key()]
				if !ok {
					return
				}
				coeff := int64(1)
				if !positive {
					coeff = -1
				}
				_ = mat.Set(i, col, big.NewInt(coeff))
			})
		}
	}

	return &BoundaryMatrix{Mat: mat, RowSimplices: rowSimplices, ColSimplices: colSimplices}, nil
}
