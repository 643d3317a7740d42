// Package bigint provides the exact integer primitives the Smith Normal
// Form engine builds on: the extended Euclidean algorithm and a small set
// of exact-division helpers, plus NarrowUint64 for narrowing parsed vertex
// indices to int.
//
// All arithmetic in this repository is arbitrary precision (*big.Int):
// no fixed-width type is used anywhere boundary-matrix entries or SNF
// scalars flow through, so ErrOverflow is only ever returned by
// NarrowUint64, which package parser calls on each parsed vertex index.
package bigint
