// Package oteladapters provides OpenTelemetry implementations of the catalog observability interfaces.
//
// The repositories and the observable handler wrappers only depend on the small interfaces
// declared in the catalog package. This package plugs them into an OpenTelemetry setup:
//
//	tracer := otel.Tracer("catalog")
//	meter := otel.Meter("catalog")
//
//	repo, err := postgresengine.NewAuthorRepositoryFromPGXPool(pool,
//		postgresengine.WithTracing(oteladapters.NewTracingCollector(tracer)),
//		postgresengine.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//		postgresengine.WithContextualLogger(oteladapters.NewSlogBridgeLogger("catalog")),
//	)
package oteladapters

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	logAttrTraceID = "trace_id"
	logAttrSpanID  = "span_id"
)

// SlogBridgeLogger implements catalog.ContextualLogger on top of log/slog.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a contextual logger that emits through the OpenTelemetry slog bridge.
// Records are sent to the global LoggerProvider unless otelslog.WithLoggerProvider is given,
// trace correlation is done by the bridge.
func NewSlogBridgeLogger(name string, options ...otelslog.Option) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: otelslog.NewLogger(name, options...)}
}

// NewSlogBridgeLoggerWithHandler creates a contextual logger that writes to the given slog.Handler.
// Records logged within an active span get trace_id and span_id attributes.
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(traceCorrelationHandler{next: handler})}
}

// DebugContext logs a debug message with context.
func (l *SlogBridgeLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

// InfoContext logs an info message with context.
func (l *SlogBridgeLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

// WarnContext logs a warning message with context.
func (l *SlogBridgeLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

// ErrorContext logs an error message with context.
func (l *SlogBridgeLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

var _ catalog.ContextualLogger = (*SlogBridgeLogger)(nil)

// traceCorrelationHandler adds the ids of the active span to every record.
type traceCorrelationHandler struct {
	next slog.Handler
}

func (h traceCorrelationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h traceCorrelationHandler) Handle(ctx context.Context, record slog.Record) error {
	if spanContext := trace.SpanContextFromContext(ctx); spanContext.IsValid() {
		record = record.Clone()
		record.AddAttrs(
			slog.String(logAttrTraceID, spanContext.TraceID().String()),
			slog.String(logAttrSpanID, spanContext.SpanID().String()),
		)
	}

	return h.next.Handle(ctx, record)
}

func (h traceCorrelationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return traceCorrelationHandler{next: h.next.WithAttrs(attrs)}
}

func (h traceCorrelationHandler) WithGroup(name string) slog.Handler {
	return traceCorrelationHandler{next: h.next.WithGroup(name)}
}

// OTelLogger implements catalog.ContextualLogger using the OpenTelemetry logging API directly.
type OTelLogger struct {
	logger log.Logger
}

// NewOTelLogger creates a contextual logger that emits OpenTelemetry log records to logger.
func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

// DebugContext emits a debug record.
func (l *OTelLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityDebug, msg, args)
}

// InfoContext emits an info record.
func (l *OTelLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityInfo, msg, args)
}

// WarnContext emits a warning record.
func (l *OTelLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityWarn, msg, args)
}

// ErrorContext emits an error record.
func (l *OTelLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityError, msg, args)
}

// emit converts slog-style key/value args into typed record attributes, a trailing key without value is dropped.
func (l *OTelLogger) emit(ctx context.Context, severity log.Severity, msg string, args []any) {
	var record log.Record
	record.SetTimestamp(time.Now())
	record.SetSeverity(severity)
	record.SetSeverityText(severityText(severity))
	record.SetBody(log.StringValue(msg))

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		record.AddAttributes(log.KeyValue{Key: key, Value: toLogValue(args[i+1])})
	}

	l.logger.Emit(ctx, record)
}

func severityText(severity log.Severity) string {
	switch severity {
	case log.SeverityDebug:
		return "DEBUG"
	case log.SeverityWarn:
		return "WARN"
	case log.SeverityError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func toLogValue(value any) log.Value {
	switch v := value.(type) {
	case string:
		return log.StringValue(v)
	case int:
		return log.IntValue(v)
	case int64:
		return log.Int64Value(v)
	case float64:
		return log.Float64Value(v)
	case bool:
		return log.BoolValue(v)
	case time.Duration:
		return log.Int64Value(v.Milliseconds())
	case error:
		return log.StringValue(v.Error())
	default:
		return log.StringValue(slog.AnyValue(v).String())
	}
}

var _ catalog.ContextualLogger = (*OTelLogger)(nil)
