package bitgrid

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Grid constructor behavior.
//
// Options are carried by a grid and inherited by grids derived from it
// (Clone, Expanded).
type Option func(*options)

// WithMetricsCollector configures metrics collection for grid operations.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &bitgrid.BasicMetricsCollector{}
//	g, _ := bitgrid.NewZeroed(4, 128, bitgrid.WithMetricsCollector(metrics))
//	// ... use g ...
//	stats := metrics.GetStats()
//	fmt.Printf("SetData rejections: %d\n", stats.SetDataErrors)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for grid operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitgrid.NewJSONLogger(slog.LevelDebug)
//	g, _ := bitgrid.NewZeroed(4, 128, bitgrid.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
