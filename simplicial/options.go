package simplicial

// DefaultMaxSimplices bounds the size of the closed complex a single
// NewComplex call will build, guarding against unbounded memory growth on
// pathological input. It is generous enough for any realistic input;
// callers embedding this package elsewhere can raise or lower it.
const DefaultMaxSimplices = 1_000_000

// Options configures Complex construction. Following the ambient stack's
// functional-options convention (matrix/types.go's MatrixOptions/Option/
// With* pattern, already adopted by snf.Options), construct with
// NewOptions and override via With* functions.
type Options struct {
	MaxSimplices int // closure-BFS guard backing ErrComplexTooLarge
}

// Option configures an Options instance.
type Option func(*Options)

// WithMaxSimplices overrides the closed-complex size guard.
func WithMaxSimplices(n int) Option {
	return func(o *Options) { o.MaxSimplices = n }
}

// NewOptions builds an Options with documented defaults, applying any
// overrides in order.
func NewOptions(opts ...Option) Options {
	o := Options{MaxSimplices: DefaultMaxSimplices}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
