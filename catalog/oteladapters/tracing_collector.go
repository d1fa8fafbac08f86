package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	spanAttrStatus = "status"

	statusDescriptionFailed   = "operation failed"
	statusDescriptionCanceled = "operation canceled"
	statusDescriptionTimeout  = "operation timed out"
)

// TracingCollector implements catalog.TracingCollector using the OpenTelemetry tracing API.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a new OpenTelemetry tracing collector.
// The tracer should be created from your OpenTelemetry TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts an internal span and returns the context carrying it.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, catalog.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(toKeyValues(attrs)...),
	)

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan sets the final attributes and status and ends the span.
// Span contexts that were not created by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx catalog.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(toKeyValues(attrs)...)
	otelSpanCtx.SetStatus(status)
	otelSpanCtx.span.End()
}

var _ catalog.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext implements catalog.SpanContext by wrapping an OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps the status strings used by the repositories and handlers to span status codes.
// A missing entity is a business outcome, the span keeps the Ok code and records it as an attribute.
func (s *OTelSpanContext) SetStatus(status string) {
	s.span.SetAttributes(attribute.String(spanAttrStatus, status))

	switch status {
	case "ok", "success", "completed", "not_found":
		s.span.SetStatus(codes.Ok, "")
	case "canceled", "cancelled":
		s.span.SetStatus(codes.Error, statusDescriptionCanceled)
	case "timeout":
		s.span.SetStatus(codes.Error, statusDescriptionTimeout)
	case "error", "failed", "failure":
		s.span.SetStatus(codes.Error, statusDescriptionFailed)
	}
}

// AddAttribute adds an attribute to the span.
func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

var _ catalog.SpanContext = (*OTelSpanContext)(nil)

func toKeyValues(attrs map[string]string) []attribute.KeyValue {
	keyValues := make([]attribute.KeyValue, 0, len(attrs))
	for key, value := range attrs {
		keyValues = append(keyValues, attribute.String(key, value))
	}

	return keyValues
}
