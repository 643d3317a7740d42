// Package simplicial builds and indexes a finite abstract simplicial
// complex: Simplex (a bitset-encoded vertex subset), Complex (the
// BFS-closed set of simplices built from a list of facets), and
// BoundaryMatrix (the signed incidence matrix ∂_k between consecutive
// dimensions).
//
// Grounded on original_source/src/simplex.rs (BitVec closure BFS,
// iter_over_subsets sign alternation, boundary_map), re-expressed with
// *big.Int as an arbitrary-width bitset (vertex universes are unbounded)
// and wrapped the way matrix/impl_incidence.go wraps a graph's incidence
// matrix with a VertexIndex map and an aligned column list.
package simplicial
