package snf

import "errors"

// ErrNotConverged indicates that Step R's Bezout-reduction loop exceeded
// its defensive iteration cap without reaching a clean pivot row. Each
// iteration of that loop strictly shrinks |a[i,i]| or eliminates an
// off-diagonal entry via Euclidean descent, so it always terminates on a
// correctly constructed matrix; seeing this sentinel means that guarantee
// was violated by an internal defect, not by anything the caller did.
var ErrNotConverged = errors.New("snf: Bezout reduction did not converge within the iteration cap")

// ErrInvariantViolated indicates that SmithNormalForm's own postcondition
// check (diagonal shape, divisibility chain, non-negativity) failed after
// the algorithm claimed to finish. Like ErrNotConverged, this signals a
// bug in this package, not a problem with the caller's input.
var ErrInvariantViolated = errors.New("snf: result failed its own postcondition check")
