package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/oteladapters"
)

func newTracingCollectorWithRecorder() (*oteladapters.TracingCollector, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	return oteladapters.NewTracingCollector(provider.Tracer("catalog-test")), recorder
}

func attributeMap(attrs []attribute.KeyValue) map[string]string {
	result := make(map[string]string, len(attrs))
	for _, kv := range attrs {
		result[string(kv.Key)] = kv.Value.Emit()
	}

	return result
}

func Test_TracingCollector_StartAndFinishSpan(t *testing.T) {
	// arrange
	collector, recorder := newTracingCollectorWithRecorder()

	// act
	ctx, span := collector.StartSpan(context.Background(), "queryhandler.handle", map[string]string{"query_type": "GetAuthor"})
	span.AddAttribute("invocation_id", "0190-abc")
	collector.FinishSpan(span, "success", map[string]string{"business_outcome": "found"})

	// assert
	assert.True(t, trace.SpanContextFromContext(ctx).IsValid())

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "queryhandler.handle", ended[0].Name())
	assert.Equal(t, trace.SpanKindInternal, ended[0].SpanKind())
	assert.Equal(t, codes.Ok, ended[0].Status().Code)

	attrs := attributeMap(ended[0].Attributes())
	assert.Equal(t, "GetAuthor", attrs["query_type"])
	assert.Equal(t, "0190-abc", attrs["invocation_id"])
	assert.Equal(t, "found", attrs["business_outcome"])
	assert.Equal(t, "success", attrs["status"])
}

func Test_TracingCollector_StatusMapping(t *testing.T) {
	testCases := []struct {
		status      string
		code        codes.Code
		description string
	}{
		{"success", codes.Ok, ""},
		{"not_found", codes.Ok, ""},
		{"error", codes.Error, "operation failed"},
		{"canceled", codes.Error, "operation canceled"},
		{"timeout", codes.Error, "operation timed out"},
		{"something_else", codes.Unset, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			// arrange
			collector, recorder := newTracingCollectorWithRecorder()
			_, span := collector.StartSpan(context.Background(), "commandhandler.handle", nil)

			// act
			collector.FinishSpan(span, tc.status, nil)

			// assert
			ended := recorder.Ended()
			require.Len(t, ended, 1)
			assert.Equal(t, tc.code, ended[0].Status().Code)
			assert.Equal(t, tc.description, ended[0].Status().Description)
			assert.Equal(t, tc.status, attributeMap(ended[0].Attributes())["status"])
		})
	}
}

func Test_TracingCollector_NestsSpansThroughContext(t *testing.T) {
	// arrange
	collector, recorder := newTracingCollectorWithRecorder()

	// act
	ctx, parent := collector.StartSpan(context.Background(), "commandhandler.handle", nil)
	_, child := collector.StartSpan(ctx, "catalog.repository.update", nil)
	collector.FinishSpan(child, "success", nil)
	collector.FinishSpan(parent, "success", nil)

	// assert
	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func Test_TracingCollector_FinishSpan_IgnoresForeignSpanContexts(t *testing.T) {
	collector, recorder := newTracingCollectorWithRecorder()

	assert.NotPanics(t, func() {
		collector.FinishSpan(nil, "success", nil)
	})
	assert.Empty(t, recorder.Ended())
}
