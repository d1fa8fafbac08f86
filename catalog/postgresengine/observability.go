package postgresengine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	metricOperationDuration = "catalog_repository_operation_duration_seconds"
	metricDatabaseErrors    = "catalog_repository_database_errors_total"
	metricRetries           = "catalog_repository_retries_total"
	metricRowsReturned      = "catalog_repository_rows"

	spanNamePrefix       = "catalog.repository."
	spanAttrOperation    = "operation"
	spanAttrEntity       = "entity"
	spanAttrTable        = "table"
	spanAttrErrorType    = "error_type"
	spanAttrAttempts     = "attempts"
	spanAttrRows         = "rows"
	spanAttrDurationMS   = "duration_ms"
	metricLabelStatus    = "status"
	metricLabelErrorType = "error_type"

	statusSuccess  = "success"
	statusNotFound = "not_found"
	statusCanceled = "canceled"
	statusTimeout  = "timeout"
	statusError    = "error"
)

// statusOf maps an operation result to the status used in spans and metrics.
func statusOf(err error) string {
	switch {
	case err == nil:
		return statusSuccess
	case catalog.IsNotFound(err):
		return statusNotFound
	case errors.Is(err, context.Canceled):
		return statusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return statusTimeout
	default:
		return statusError
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func (e *engine) labels(operation string, extra ...string) map[string]string {
	labels := map[string]string{
		spanAttrOperation: operation,
		spanAttrEntity:    e.entity,
	}

	for i := 0; i+1 < len(extra); i += 2 {
		labels[extra[i]] = extra[i+1]
	}

	return labels
}

// logQueryWithDuration logs SQL statements with execution time at debug level.
func (e *engine) logQueryWithDuration(ctx context.Context, sqlQuery string, duration time.Duration) {
	e.logDebug(ctx, logMsgSQLExecuted+e.entity, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
}

func (e *engine) logDebug(ctx context.Context, msg string, args ...any) {
	switch {
	case e.contextualLogger != nil:
		e.contextualLogger.DebugContext(ctx, msg, args...)
	case e.logger != nil:
		e.logger.Debug(msg, args...)
	}
}

func (e *engine) logInfo(ctx context.Context, msg string, args ...any) {
	switch {
	case e.contextualLogger != nil:
		e.contextualLogger.InfoContext(ctx, msg, args...)
	case e.logger != nil:
		e.logger.Info(msg, args...)
	}
}

func (e *engine) logWarn(ctx context.Context, msg string, args ...any) {
	switch {
	case e.contextualLogger != nil:
		e.contextualLogger.WarnContext(ctx, msg, args...)
	case e.logger != nil:
		e.logger.Warn(msg, args...)
	}
}

func (e *engine) logError(ctx context.Context, msg string, args ...any) {
	switch {
	case e.contextualLogger != nil:
		e.contextualLogger.ErrorContext(ctx, msg, args...)
	case e.logger != nil:
		e.logger.Error(msg, args...)
	}
}

// recordDuration records the operation duration, using the context-aware method if available.
func (e *engine) recordDuration(ctx context.Context, operation, status string, duration time.Duration) {
	if e.metricsCollector == nil {
		return
	}

	labels := e.labels(operation, metricLabelStatus, status)

	if contextualCollector, ok := e.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
		return
	}

	e.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
}

// recordRows records how many rows a successful operation read or wrote.
func (e *engine) recordRows(ctx context.Context, operation string, rows int) {
	if e.metricsCollector == nil {
		return
	}

	labels := e.labels(operation, metricLabelStatus, statusSuccess)

	if contextualCollector, ok := e.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricRowsReturned, float64(rows), labels)
		return
	}

	e.metricsCollector.RecordValue(metricRowsReturned, float64(rows), labels)
}

// recordError counts a failed operation, NotFound is a business outcome and not counted here.
func (e *engine) recordError(ctx context.Context, operation, errorType string) {
	e.incrementCounter(ctx, metricDatabaseErrors, e.labels(operation,
		metricLabelStatus, statusError,
		metricLabelErrorType, errorType,
	))
}

func (e *engine) recordRetry(ctx context.Context, operation, errorType string) {
	e.incrementCounter(ctx, metricRetries, e.labels(operation, metricLabelErrorType, errorType))
}

func (e *engine) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if e.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := e.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	e.metricsCollector.IncrementCounter(metric, labels)
}

// startSpan starts a tracing span if the tracing collector is configured.
func (e *engine) startSpan(ctx context.Context, operation string) (context.Context, catalog.SpanContext) {
	if e.tracingCollector == nil {
		return ctx, nil
	}

	return e.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, map[string]string{
		spanAttrOperation: operation,
		spanAttrEntity:    e.entity,
		spanAttrTable:     e.tableName,
	})
}

// finishSpan finishes a tracing span if the tracing collector is configured.
func (e *engine) finishSpan(
	span catalog.SpanContext,
	status string,
	errorType string,
	attempts int,
	rows int,
	duration time.Duration,
) {
	if e.tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		spanAttrAttempts:   strconv.Itoa(attempts),
		spanAttrDurationMS: fmt.Sprintf("%.2f", toMilliseconds(duration)),
	}

	if errorType != "" {
		attrs[spanAttrErrorType] = errorType
	} else {
		attrs[spanAttrRows] = strconv.Itoa(rows)
	}

	e.tracingCollector.FinishSpan(span, status, attrs)
}
