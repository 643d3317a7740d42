package simplicial

import (
	"math/big"
	"math/bits"
)

// Simplex is an abstract simplex: a nonempty finite subset of the vertex
// universe {0, ..., n-1}, encoded canonically as a length-n bitmask. Two
// simplices are equal iff their bitmasks are equal; vertex order is
// irrelevant. The zero Simplex (no bits set) is never produced by this
// package's constructors.
type Simplex struct {
	bits *big.Int
}

// NewSimplex builds a Simplex from a list of vertex indices. Returns
// ErrEmptySimplex if vertices is empty.
//
// Contract: every entry of vertices must be >= 0 (the driver narrows and
// validates parsed indices before they reach this package).
func NewSimplex(vertices []int) (Simplex, error) {
	if len(vertices) == 0 {
		return Simplex{}, ErrEmptySimplex
	}
	b := new(big.Int)
	for _, v := range vertices {
		b.SetBit(b, v, 1)
	}
	return Simplex{bits: b}, nil
}

// simplexFromBits wraps an already-built bitmask. The caller must not
// retain or mutate b afterward — ownership transfers to the Simplex.
func simplexFromBits(b *big.Int) Simplex {
	return Simplex{bits: b}
}

// Popcount returns the number of vertices in the simplex.
func (s Simplex) Popcount() int {
	count := 0
	for _, w := range s.bits.Bits() {
		count += bits.OnesCount(uint(w))
	}
	return count
}

// Dimension returns popcount - 1: a single vertex has dimension 0, an
// edge has dimension 1, and so on.
func (s Simplex) Dimension() int {
	return s.Popcount() - 1
}

// Contains reports whether vertex v belongs to the simplex.
func (s Simplex) Contains(v int) bool {
	return s.bits.Bit(v) == 1
}

// Vertices returns the simplex's vertex indices in increasing order.
func (s Simplex) Vertices() []int {
	out := make([]int, 0, s.Popcount())
	n := s.bits.BitLen()
	for v := 0; v < n; v++ {
		if s.bits.Bit(v) == 1 {
			out = append(out, v)
		}
	}
	return out
}

// WithoutVertex returns the face obtained by removing v from s. The
// caller is responsible for ensuring v ∈ s and |s| >= 2; otherwise the
// result may be the empty simplex.
func (s Simplex) WithoutVertex(v int) Simplex {
	b := new(big.Int).Set(s.bits)
	b.SetBit(b, v, 0)
	return Simplex{bits: b}
}

// Equal reports whether s and other encode the same vertex set.
func (s Simplex) Equal(other Simplex) bool {
	return s.bits.Cmp(other.bits) == 0
}

// key returns a canonical string usable as a map key (Complex's simplex
// set is keyed this way, mirroring simplex.rs's HashSet<BitVec>).
func (s Simplex) key() string {
	return s.bits.Text(16)
}

// compare orders two simplices by their bitmask value, giving a total,
// deterministic order used to fix row/column enumeration within one
// BoundaryMatrix call: the exact order is an implementation choice, but
// it must stay fixed for the lifetime of one call.
func (s Simplex) compare(other Simplex) int {
	return s.bits.Cmp(other.bits)
}

// iterOverSubsets calls act once per codimension-1 face of s, in
// increasing order of the removed vertex's bit position, alternating
// sign starting at true (+1). Mirrors simplex.rs's iter_over_subsets.
func iterOverSubsets(s Simplex, act func(face Simplex, sign bool)) {
	sign := true
	n := s.bits.BitLen()
	for v := 0; v < n; v++ {
		if s.bits.Bit(v) == 1 {
			act(s.WithoutVertex(v), sign)
			sign = !sign
		}
	}
}
