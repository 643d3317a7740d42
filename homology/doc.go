// Package homology turns a simplicial complex's chain of boundary
// matrices into its integer homology groups H_0, ..., H_dim, each
// expressed in invariant-factor form Z^b ⊕ ⨁ Z/d_iZ.
//
// Grounded on original_source/src/homology.rs's HomologyGroup and
// homology_groups; the iteration runs 0 to dim inclusive, always
// producing H_dim, which differs from the Rust original's off-by-one loop
// (0..dimension(), exclusive) — the inclusive range is the correct one
// (see DESIGN.md).
package homology
