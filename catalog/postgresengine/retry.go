package postgresengine

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	defaultMaxAttempts  = 3
	defaultBaseDelay    = 10 * time.Millisecond
	defaultJitterFactor = 0.3

	sqlStateSerializationFailure     = "40001"
	sqlStateDeadlockDetected         = "40P01"
	sqlStateClassConnectionException = "08"

	errorTypeNone                    = "none"
	errorTypeSerializationFailure    = "serialization_failure"
	errorTypeDeadlock                = "deadlock"
	errorTypeConnection              = "connection"
	errorTypeContextCanceled         = "context_canceled"
	errorTypeContextDeadlineExceeded = "context_deadline_exceeded"
	errorTypeNotFound                = "not_found"
	errorTypeOther                   = "other"
)

var (
	// ErrInvalidMaxAttempts is returned when max attempts are not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrNegativeBaseDelay is returned when the base delay is negative.
	ErrNegativeBaseDelay = errors.New("base delay must not be negative")

	// ErrInvalidJitterFactor is returned when the jitter factor is not between 0.0 and 1.0.
	ErrInvalidJitterFactor = errors.New("jitter factor must be between 0.0 and 1.0")
)

// retryConfig holds the configuration for exponential backoff retries.
// The zero value makes exactly one attempt.
type retryConfig struct {
	maxAttempts  int
	baseDelay    time.Duration
	jitterFactor float64
}

func defaultRetryConfig() retryConfig {
	return retryConfig{
		maxAttempts:  defaultMaxAttempts,
		baseDelay:    defaultBaseDelay,
		jitterFactor: defaultJitterFactor,
	}
}

// RetryOption configures retry behavior using the functional options pattern.
type RetryOption func(*retryConfig) error

// WithMaxAttempts sets the maximum number of attempts, including the first one.
func WithMaxAttempts(attempts int) RetryOption {
	return func(cfg *retryConfig) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}

		cfg.maxAttempts = attempts

		return nil
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
// Actual delays: baseDelay, baseDelay*2, baseDelay*4, etc.
func WithBaseDelay(delay time.Duration) RetryOption {
	return func(cfg *retryConfig) error {
		if delay < 0 {
			return ErrNegativeBaseDelay
		}

		cfg.baseDelay = delay

		return nil
	}
}

// WithJitterFactor sets the jitter, added as a fraction of the calculated backoff delay.
// Valid range: 0.0 (no jitter) to 1.0 (100% jitter).
func WithJitterFactor(factor float64) RetryOption {
	return func(cfg *retryConfig) error {
		if factor < 0.0 || factor > 1.0 {
			return ErrInvalidJitterFactor
		}

		cfg.jitterFactor = factor

		return nil
	}
}

// attemptFunc is one try of a repository operation.
type attemptFunc func(ctx context.Context) error

// retryObserver is notified before each backoff wait.
type retryObserver func(ctx context.Context, attempt int, delay time.Duration, err error)

// do runs fn until it succeeds, fails permanently, or the attempts are exhausted.
// It returns the number of attempts made together with the last error.
func (cfg retryConfig) do(ctx context.Context, idempotent bool, fn attemptFunc, onRetry retryObserver) (int, error) {
	maxAttempts := max(cfg.maxAttempts, 1)

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return attempt, nil
		}

		if attempt == maxAttempts || !isTransientError(lastErr, idempotent) {
			return attempt, lastErr
		}

		backoffDelay := cfg.backoff(attempt)
		if onRetry != nil {
			onRetry(ctx, attempt, backoffDelay, lastErr)
		}

		select {
		case <-time.After(backoffDelay):
		case <-ctx.Done():
			return attempt, ctx.Err()
		}
	}

	return maxAttempts, lastErr
}

// backoff calculates baseDelay * 2^(attempt-1) plus jitter.
func (cfg retryConfig) backoff(attempt int) time.Duration {
	delay := cfg.baseDelay * time.Duration(1<<(attempt-1))
	jitter := rand.Float64() * float64(delay) * cfg.jitterFactor //nolint:gosec // math/rand is sufficient for jitter

	return delay + time.Duration(jitter)
}

// isTransientError determines if a failed attempt may succeed when repeated.
//
// Serialization failures and deadlocks were rolled back by the database, so they are always retryable.
// Connection failures are only retried for idempotent operations, an INSERT might have been committed.
// Context cancellation and deadlines are never retried.
func isTransientError(err error, idempotent bool) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	switch sqlState := sqlStateOf(err); {
	case sqlState == sqlStateSerializationFailure, sqlState == sqlStateDeadlockDetected:
		return true

	case strings.HasPrefix(sqlState, sqlStateClassConnectionException):
		return idempotent

	case sqlState == "":
		return idempotent && pgconn.SafeToRetry(err)

	default:
		return false
	}
}

// sqlStateOf extracts the SQLSTATE code from pgx or lib/pq errors, or returns an empty string.
func sqlStateOf(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// errorTypeOf classifies an error for metrics labeling.
func errorTypeOf(err error) string {
	switch sqlState := sqlStateOf(err); {
	case err == nil:
		return errorTypeNone
	case errors.Is(err, context.Canceled):
		return errorTypeContextCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return errorTypeContextDeadlineExceeded
	case catalog.IsNotFound(err):
		return errorTypeNotFound
	case sqlState == sqlStateSerializationFailure:
		return errorTypeSerializationFailure
	case sqlState == sqlStateDeadlockDetected:
		return errorTypeDeadlock
	case strings.HasPrefix(sqlState, sqlStateClassConnectionException):
		return errorTypeConnection
	default:
		return errorTypeOther
	}
}
