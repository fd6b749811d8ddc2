package facetgrid

type options struct {
	logger      *Logger
	parallelism int
}

// Option configures Engine constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface.
type Option func(*options)

// WithLogger configures the structured logger used around operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithParallelism configures the number of goroutines used for statistics
// collection. Per-field accumulation is independent across fields, so
// collection scales with the field count.
//
// If parallelism <= 0, runtime.GOMAXPROCS(0) is used.
func WithParallelism(parallelism int) Option {
	return func(o *options) {
		o.parallelism = parallelism
	}
}
