package htable

type options[K, V any] struct {
	ownership Ownership[K, V]
	logger    *Logger
	metrics   MetricsCollector
}

// Option configures table construction.
//
// Options exist to keep the New signature stable: the hash and equality
// strategies are mandatory positional arguments, everything else is
// optional and defaulted.
type Option[K, V any] func(*options[K, V])

// WithOwnership configures the copy/free policy for stored keys and
// values. Nil operations inside the policy default individually, see
// Ownership.
func WithOwnership[K, V any](o Ownership[K, V]) Option[K, V] {
	return func(opts *options[K, V]) {
		opts.ownership = o
	}
}

// WithLogger configures structured logging for table operations.
// Pass nil to keep the default noop logger.
func WithLogger[K, V any](logger *Logger) Option[K, V] {
	return func(opts *options[K, V]) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to keep the default noop collector.
func WithMetricsCollector[K, V any](mc MetricsCollector) Option[K, V] {
	return func(opts *options[K, V]) {
		if mc != nil {
			opts.metrics = mc
		}
	}
}

func applyOptions[K, V any](optFns []Option[K, V]) options[K, V] {
	o := options[K, V]{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
