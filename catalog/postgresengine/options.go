package postgresengine

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// Option defines a functional option for configuring a repository.
type Option func(*engine) error

// WithTableName sets the table name for the repository.
func WithTableName(tableName string) Option {
	return func(e *engine) error {
		if tableName == "" {
			return catalog.ErrEmptyTableNameSupplied
		}

		e.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the repository.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: Completed operations with affected ids and durations (production-safe)
// Warn level: Retries and non-critical issues like failures closing rows
// Error level: Failures that cause operation failures.
func WithLogger(logger catalog.Logger) Option {
	return func(e *engine) error {
		e.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the repository.
// It receives the same messages as the Logger, with the context for trace correlation.
func WithContextualLogger(logger catalog.ContextualLogger) Option {
	return func(e *engine) error {
		e.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the repository.
// It receives operation durations, returned row counts, database errors, and retries.
func WithMetrics(collector catalog.MetricsCollector) Option {
	return func(e *engine) error {
		e.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the repository.
// Each repository operation gets its own span.
func WithTracing(collector catalog.TracingCollector) Option {
	return func(e *engine) error {
		e.tracingCollector = collector
		return nil
	}
}

// WithRetry enables retries of transient database failures.
// Without further options it makes up to 3 attempts with 10 ms base delay and 30% jitter.
func WithRetry(options ...RetryOption) Option {
	return func(e *engine) error {
		cfg := defaultRetryConfig()

		for _, option := range options {
			if err := option(&cfg); err != nil {
				return err
			}
		}

		e.retry = cfg

		return nil
	}
}
