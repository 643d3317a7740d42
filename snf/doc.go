// Package snf computes the Smith Normal Form of an integer matrix: given
// M, it returns unimodular S and T and diagonal A such that M = S·A·T,
// A's nonzero diagonal entries are non-negative and form a divisibility
// chain A[0,0] | A[1,1] | ... | A[r-1,r-1], and any zero diagonal entries
// follow strictly after the nonzero ones.
//
// The algorithm is a four-step pipeline — Step P (pivot selection), Step R
// (Bezout-based row/column zeroing), Step D (divisibility-chain
// enforcement across diagonal pairs), Step N (sign normalization) —
// translated from the original Rust implementation
// (original_source/src/smith.rs) into this repository's Doolittle-LU-style
// doc-comment register (matrix/impl_linear_algebra.go): Contract /
// Determinism & Performance / Complexity / AI-Hints blocks per exported
// function, Stage-numbered inline comments inside each.
package snf
