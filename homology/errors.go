package homology

import "errors"

// ErrNilComplex indicates Groups was called with a nil *simplicial.Complex.
var ErrNilComplex = errors.New("homology: complex is nil")
