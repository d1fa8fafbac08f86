package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	// CommandHandlerDurationMetric tracks command handler execution duration (OpenTelemetry-compatible).
	CommandHandlerDurationMetric = "commandhandler_handle_duration_seconds"

	// CommandHandlerCallsMetric tracks total command handler calls.
	CommandHandlerCallsMetric = "commandhandler_handle_calls_total"

	// CommandHandlerNotFoundMetric tracks commands that targeted a missing entity.
	CommandHandlerNotFoundMetric = "commandhandler_not_found_total"

	// CommandHandlerCanceledMetric tracks canceled operations.
	CommandHandlerCanceledMetric = "commandhandler_canceled_operations_total"

	// CommandHandlerTimeoutMetric tracks timeout operations.
	CommandHandlerTimeoutMetric = "commandhandler_timeout_operations_total"

	// QueryHandlerDurationMetric tracks query handler execution duration (OpenTelemetry-compatible).
	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"

	// QueryHandlerCallsMetric tracks total query handler calls.
	QueryHandlerCallsMetric = "queryhandler_handle_calls_total"

	// QueryHandlerAbsentMetric tracks queries that found nothing.
	QueryHandlerAbsentMetric = "queryhandler_absent_results_total"

	// QueryHandlerCanceledMetric tracks canceled query operations.
	QueryHandlerCanceledMetric = "queryhandler_canceled_operations_total"

	// QueryHandlerTimeoutMetric tracks timeout query operations.
	QueryHandlerTimeoutMetric = "queryhandler_timeout_operations_total"

	// SpanNameCommandHandle is the span name for command handler invocations.
	SpanNameCommandHandle = "commandhandler.handle"

	// SpanNameQueryHandle is the span name for query handler invocations.
	SpanNameQueryHandle = "queryhandler.handle"

	// StatusSuccess indicates successful completion.
	StatusSuccess = "success"

	// StatusNotFound indicates that the targeted entity does not exist.
	StatusNotFound = "not_found"

	// StatusError indicates a processing error.
	StatusError = "error"

	// StatusCanceled indicates the operation was canceled due to context cancellation.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the operation timed out due to context deadline exceeded.
	StatusTimeout = "timeout"

	// OutcomeApplied is the business outcome of a successful command.
	OutcomeApplied = "applied"

	// OutcomeFound is the business outcome of a query that returned a result.
	OutcomeFound = "found"

	// OutcomeAbsent is the business outcome of a query that found nothing.
	OutcomeAbsent = "absent"

	// LogMsgCommandStarted is logged when command processing begins.
	LogMsgCommandStarted = "command handler started"

	// LogMsgCommandCompleted is logged when command processing succeeds.
	LogMsgCommandCompleted = "command handler completed"

	// LogMsgCommandFailed is logged when command processing fails.
	LogMsgCommandFailed = "command handler failed"

	// LogMsgQueryStarted is logged when query processing begins.
	LogMsgQueryStarted = "query handler started"

	// LogMsgQueryCompleted is logged when query processing succeeds.
	LogMsgQueryCompleted = "query handler completed"

	// LogMsgQueryFailed is logged when query processing fails.
	LogMsgQueryFailed = "query handler failed"

	// LogAttrCommandType identifies the command type in logs.
	LogAttrCommandType = "command_type"

	// LogAttrQueryType identifies the query type in logs.
	LogAttrQueryType = "query_type"

	// LogAttrInvocationID correlates all log lines and the span of one handler invocation.
	LogAttrInvocationID = "invocation_id"

	// LogAttrStatus indicates the processing status.
	LogAttrStatus = "status"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrBusinessOutcome classifies the business result.
	LogAttrBusinessOutcome = "business_outcome"

	// LogAttrError contains error details.
	LogAttrError = "error"
)

// Interface aliases for convenience when using handler observability.
// These match the catalog observability interfaces, so one implementation serves repositories and handlers.

// MetricsCollector interface for collecting handler performance metrics.
type MetricsCollector = catalog.MetricsCollector

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
type ContextualMetricsCollector = catalog.ContextualMetricsCollector

// TracingCollector interface for distributed tracing in handlers.
type TracingCollector = catalog.TracingCollector

// SpanContext represents an active tracing span.
type SpanContext = catalog.SpanContext

// ContextualLogger interface for context-aware logging in handlers.
type ContextualLogger = catalog.ContextualLogger

// Logger interface for basic logging in handlers.
type Logger = catalog.Logger

// BuildCommandLabels creates standard metric labels for command handler operations.
func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		LogAttrStatus:      status,
	}
}

// BuildQueryLabels creates standard metric labels for query handler operations.
func BuildQueryLabels(queryType, status string) map[string]string {
	return map[string]string{
		LogAttrQueryType: queryType,
		LogAttrStatus:    status,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with precision.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// StatusFromError classifies a handler error for metrics, spans, and logs.
func StatusFromError(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case IsNotFoundError(err):
		return StatusNotFound
	case IsCancellationError(err):
		return StatusCanceled
	case IsTimeoutError(err):
		return StatusTimeout
	default:
		return StatusError
	}
}

// RecordCommandMetrics records duration and call count of a command operation,
// plus the dedicated counter for not-found, canceled, and timed-out commands.
func RecordCommandMetrics(
	ctx context.Context,
	collector MetricsCollector,
	commandType string,
	status string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildCommandLabels(commandType, status)
	recordDuration(ctx, collector, CommandHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, CommandHandlerCallsMetric, labels)

	switch status {
	case StatusNotFound:
		incrementCounter(ctx, collector, CommandHandlerNotFoundMetric, BuildCommandLabels(commandType, status))
	case StatusCanceled:
		incrementCounter(ctx, collector, CommandHandlerCanceledMetric, BuildCommandLabels(commandType, status))
	case StatusTimeout:
		incrementCounter(ctx, collector, CommandHandlerTimeoutMetric, BuildCommandLabels(commandType, status))
	}
}

// RecordQueryMetrics records duration and call count of a query operation,
// plus the dedicated counter for absent results, canceled, and timed-out queries.
func RecordQueryMetrics(
	ctx context.Context,
	collector MetricsCollector,
	queryType string,
	status string,
	businessOutcome string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildQueryLabels(queryType, status)
	if businessOutcome != "" {
		labels[LogAttrBusinessOutcome] = businessOutcome
	}

	recordDuration(ctx, collector, QueryHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, QueryHandlerCallsMetric, labels)

	switch {
	case businessOutcome == OutcomeAbsent:
		incrementCounter(ctx, collector, QueryHandlerAbsentMetric, BuildQueryLabels(queryType, status))
	case status == StatusCanceled:
		incrementCounter(ctx, collector, QueryHandlerCanceledMetric, BuildQueryLabels(queryType, status))
	case status == StatusTimeout:
		incrementCounter(ctx, collector, QueryHandlerTimeoutMetric, BuildQueryLabels(queryType, status))
	}
}

func recordDuration(ctx context.Context, collector MetricsCollector, metric string, duration time.Duration, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	collector.RecordDuration(metric, duration, labels)
}

func incrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	collector.IncrementCounter(metric, labels)
}

// StartCommandSpan starts a distributed tracing span for command operations.
// Returns the updated context and span context, or original context and nil if tracing is disabled.
func StartCommandSpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	commandType string,
	invocationID string,
) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameCommandHandle, map[string]string{
		LogAttrCommandType:  commandType,
		LogAttrInvocationID: invocationID,
	})
}

// StartQuerySpan starts a distributed tracing span for query operations.
// Returns the updated context and span context, or original context and nil if tracing is disabled.
func StartQuerySpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	queryType string,
	invocationID string,
) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameQueryHandle, map[string]string{
		LogAttrQueryType:    queryType,
		LogAttrInvocationID: invocationID,
	})
}

// FinishSpan completes a handler span with the operation outcome.
func FinishSpan(
	tracingCollector TracingCollector,
	span SpanContext,
	status string,
	businessOutcome string,
	duration time.Duration,
	err error,
) {
	if tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: formatDurationMS(duration),
	}

	if businessOutcome != "" {
		attrs[LogAttrBusinessOutcome] = businessOutcome
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	tracingCollector.FinishSpan(span, status, attrs)
}

// LogStart logs the beginning of handler processing.
// handlerTypeAttr is LogAttrCommandType or LogAttrQueryType.
func LogStart(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	msg string,
	handlerTypeAttr string,
	handlerType string,
	invocationID string,
) {
	args := []any{
		handlerTypeAttr, handlerType,
		LogAttrInvocationID, invocationID,
	}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Info(msg, args...)
	}
}

// LogSuccess logs successful handler completion.
func LogSuccess(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	msg string,
	handlerTypeAttr string,
	handlerType string,
	invocationID string,
	businessOutcome string,
	duration time.Duration,
) {
	args := []any{
		handlerTypeAttr, handlerType,
		LogAttrInvocationID, invocationID,
		LogAttrStatus, StatusSuccess,
		LogAttrBusinessOutcome, businessOutcome,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Info(msg, args...)
	}
}

// LogFailure logs handler failures, a missing entity is logged at info level and everything else at error level.
func LogFailure(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	msg string,
	handlerTypeAttr string,
	handlerType string,
	invocationID string,
	status string,
	duration time.Duration,
	err error,
) {
	args := []any{
		handlerTypeAttr, handlerType,
		LogAttrInvocationID, invocationID,
		LogAttrStatus, status,
		LogAttrDurationMS, ToMilliseconds(duration),
		LogAttrError, err.Error(),
	}

	if status == StatusNotFound {
		if contextualLogger != nil {
			contextualLogger.InfoContext(ctx, msg, args...)
		} else if logger != nil {
			logger.Info(msg, args...)
		}

		return
	}

	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Error(msg, args...)
	}
}

// formatDurationMS formats duration in milliseconds for span attributes.
func formatDurationMS(duration time.Duration) string {
	return fmt.Sprintf("%.2f", ToMilliseconds(duration))
}

// IsNotFoundError checks if an error reports a missing author or book.
func IsNotFoundError(err error) bool {
	return catalog.IsNotFound(err)
}

// IsCancellationError checks if an error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError checks if an error is due to context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
