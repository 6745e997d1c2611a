package rwlock

import "github.com/mhollis/rwbound/logger"

// Option applies a configuration setting to a lock during construction.
type Option func(*config)

// config holds the ambient collaborators of a lock. Both default to
// no-op implementations so the zero-option lock carries no overhead.
type config struct {
	logger  logger.Logger
	metrics Metrics
}

func defaultConfig() config {
	return config{
		logger:  &logger.NoOpLogger{},
		metrics: &NoOpMetrics{},
	}
}

// WithLogger sets the logger for lock events (misuse, abandoned waits).
func WithLogger(l logger.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithMetrics sets the metrics collector for lock operations.
func WithMetrics(m Metrics) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.metrics = m
		}
	}
}
