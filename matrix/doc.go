// Package matrix provides the arbitrary-precision dense integer matrix
// used throughout this repository: boundary matrices, and the S, A, T
// factors the Smith Normal Form engine in package snf produces from them.
//
// Dense stores *big.Int entries in a flat row-major slice, using the same
// layout and At/Set/Clone/String contract as a float64 dense matrix would,
// adapted to arbitrary-precision exact arithmetic since Smith Normal Form
// requires exact integer arithmetic throughout, never an approximation.
// LeftUpdate and RightUpdate are the two-row / two-column
// unimodular primitives the reduction builds on; the Smith Normal Form
// engine is the only caller that applies them with matrices it has not
// itself verified to be unimodular.
package matrix
