package bucketsort

// OverflowPolicy decides what Fill does with an item whose bucket is full.
type OverflowPolicy int

const (
	// DropOnFull skips the item and keeps going. Full buckets are an expected
	// outcome of hash clustering, and the solver simply loses those candidates.
	DropOnFull OverflowPolicy = iota
	// FailOnFull stops at the first full bucket and returns its error.
	FailOnFull
)

func (p OverflowPolicy) String() string {
	switch p {
	case DropOnFull:
		return "drop"
	case FailOnFull:
		return "fail"
	default:
		return "unknown"
	}
}

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	overflow         OverflowPolicy
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		overflow:         DropOnFull,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures the layer helpers.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed, metrics
// are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithOverflowPolicy sets how Fill handles full buckets. Default DropOnFull.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(o *options) {
		o.overflow = p
	}
}
