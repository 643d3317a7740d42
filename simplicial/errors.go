package simplicial

import "errors"

// ErrEmptyComplex indicates the input facet list had no facets at all.
var ErrEmptyComplex = errors.New("simplicial: facet list is empty")

// ErrEmptySimplex indicates one of the input facets had no vertices.
var ErrEmptySimplex = errors.New("simplicial: facet has no vertices")

// ErrNoVertices indicates the derived vertex universe came out empty after
// passing the ErrEmptyComplex/ErrEmptySimplex checks. The vertex universe
// is only ever computed as n=0 when every facet is empty, which is already
// rejected by ErrEmptySimplex — seeing this sentinel signals that guarantee
// was violated by an internal defect, not a malformed input.
var ErrNoVertices = errors.New("simplicial: derived vertex universe is empty")

// ErrComplexTooLarge indicates the closure BFS exceeded the configured
// MaxSimplices guard (Options), the bound on the closed complex's peak
// size.
var ErrComplexTooLarge = errors.New("simplicial: closed complex exceeds the configured simplex-count limit")
