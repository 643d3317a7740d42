package snf

// DefaultMaxIterations bounds Step R's Bezout-reduction loop per pivot row.
// Each iteration strictly shrinks |a[i,i]| or eliminates an off-diagonal
// entry, so the loop always terminates for any well-formed input; the cap
// only exists so that a genuine defect surfaces as ErrNotConverged instead
// of an endless loop.
const DefaultMaxIterations = 1_000_000

// Options configures SmithNormalForm's defensive bounds. Following the
// ambient stack's functional-options convention (matrix/types.go's
// MatrixOptions/Option/With* pattern), construct with NewOptions and
// override via With* functions.
type Options struct {
	MaxIterations int // per-pivot-row cap on Step R's reduction loop
}

// Option configures an Options instance.
type Option func(*Options)

// WithMaxIterations overrides the per-pivot-row iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// NewOptions builds an Options with documented defaults, applying any
// overrides in order.
func NewOptions(opts ...Option) Options {
	o := Options{MaxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
