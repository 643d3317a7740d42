package homology

import (
	"math/big"

	"github.com/technosentience/simp-hom-calc/matrix"
	"github.com/technosentience/simp-hom-calc/simplicial"
	"github.com/technosentience/simp-hom-calc/snf"
)

// Groups computes H_0, ..., H_dim for c: for each k it runs Smith Normal
// Form on ∂_k and ∂_{k+1}, derives rank(C_k), rank(ker ∂_k), rank(im
// ∂_{k+1}), the free rank b_k = N_k - r_k - r_{k+1}, and the torsion
// coefficients (the nonzero diagonal entries of SNF(∂_{k+1}) that are ≠ 1,
// preserved in SNF's divisibility order).
//
// Grounded on homology.rs's of_boundary_maps/homology_groups; the loop
// runs k = 0..dim(c) inclusive, so H_dim is always produced (the Rust
// original's loop stops one short of this — see DESIGN.md).
func Groups(c *simplicial.Complex, opts ...snf.Option) ([]HomologyGroup, error) {
	if c == nil {
		return nil, ErrNilComplex
	}

	dim := c.Dimension()
	groups := make([]HomologyGroup, 0, dim+1)

	bk, err := c.BoundaryMatrix(0)
	if err != nil {
		return nil, err
	}

	for k := 0; k <= dim; k++ {
		bk1, err := c.BoundaryMatrix(k + 1)
		if err != nil {
			return nil, err
		}

		rankK, _, err := rankAndDiagonal(bk.Mat, opts)
		if err != nil {
			return nil, err
		}
		rankK1, invariants, err := rankAndDiagonal(bk1.Mat, opts)
		if err != nil {
			return nil, err
		}

		nK := len(bk.ColSimplices)
		free := nK - rankK - rankK1

		torsion := make([]*big.Int, 0, len(invariants))
		for _, d := range invariants {
			if d.CmpAbs(big.NewInt(1)) != 0 {
				torsion = append(torsion, d)
			}
		}

		groups = append(groups, HomologyGroup{Free: free, Torsion: torsion})
		bk = bk1
	}

	return groups, nil
}

// rankAndDiagonal runs Smith Normal Form on m and returns the number of
// nonzero diagonal entries (the rank over Q) along with those entries
// themselves, in SNF's divisibility order.
func rankAndDiagonal(m *matrix.Dense, opts []snf.Option) (rank int, diag []*big.Int, err error) {
	_, a, _, err := snf.SmithNormalForm(m, opts...)
	if err != nil {
		return 0, nil, err
	}
	limit := a.Rows()
	if a.Cols() < limit {
		limit = a.Cols()
	}
	diag = make([]*big.Int, 0, limit)
	for i := 0; i < limit; i++ {
		v, err := a.At(i, i)
		if err != nil {
			return 0, nil, err
		}
		if v.Sign() != 0 {
			diag = append(diag, v)
		}
	}
	return len(diag), diag, nil
}
