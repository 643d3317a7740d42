package homology

import "math/big"

// HomologyGroup describes a finitely generated abelian group in
// invariant-factor form: Z^Free ⊕ ⨁_i Z/Torsion[i]Z, with each
// Torsion[i] > 1 and Torsion[i] | Torsion[i+1].
type HomologyGroup struct {
	Free    int
	Torsion []*big.Int
}

// Betti returns the free rank (the Betti number).
func (g HomologyGroup) Betti() int {
	return g.Free
}

// TorsionCoefficients returns the torsion coefficients in SNF-produced
// (divisibility) order.
func (g HomologyGroup) TorsionCoefficients() []*big.Int {
	return g.Torsion
}

// Equal reports whether g and other describe the same group: equal free
// rank and componentwise-equal torsion coefficients, in order. Carried
// over from the Rust original's derived PartialEq/Eq since Go has no
// structural equality operator for slice-bearing structs.
func (g HomologyGroup) Equal(other HomologyGroup) bool {
	if g.Free != other.Free {
		return false
	}
	if len(g.Torsion) != len(other.Torsion) {
		return false
	}
	for i := range g.Torsion {
		if g.Torsion[i].Cmp(other.Torsion[i]) != 0 {
			return false
		}
	}
	return true
}
