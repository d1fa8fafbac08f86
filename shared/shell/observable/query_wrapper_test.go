package observable_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/authors-books-cqrs-go/shared/shell"
	"github.com/AntonStoeckl/authors-books-cqrs-go/shared/shell/observable"
	"github.com/AntonStoeckl/authors-books-cqrs-go/testutil/observability/testdoubles"
)

type mockQuery struct {
	ID int64
}

func (q mockQuery) QueryType() string {
	return "TestQuery"
}

type mockResult struct {
	Value string
}

func (r *mockResult) IsAbsent() bool {
	return r == nil
}

type mockQueryHandler struct {
	result *mockResult
	err    error
	calls  int
}

func (h *mockQueryHandler) Handle(_ context.Context, _ mockQuery) (*mockResult, error) {
	h.calls++
	return h.result, h.err
}

func newQueryWrapper(
	t *testing.T,
	handler *mockQueryHandler,
	opts ...observable.QueryOption[mockQuery, *mockResult],
) *observable.QueryWrapper[mockQuery, *mockResult] {
	t.Helper()

	wrapper, err := observable.NewQueryWrapper[mockQuery, *mockResult](handler, opts...)
	require.NoError(t, err)

	return wrapper
}

func Test_QueryWrapper_Handle_FoundResult(t *testing.T) {
	// arrange
	expected := &mockResult{Value: "John Doe"}
	handler := &mockQueryHandler{result: expected}
	metricsCollector := testdoubles.NewMetricsCollectorSpy(true)
	tracingCollector := testdoubles.NewTracingCollectorSpy(true)
	contextualLogger := testdoubles.NewContextualLoggerSpy(true)

	wrapper := newQueryWrapper(t, handler,
		observable.WithQueryMetrics[mockQuery, *mockResult](metricsCollector),
		observable.WithQueryTracing[mockQuery, *mockResult](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, *mockResult](contextualLogger),
	)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{ID: 42})

	// assert
	require.NoError(t, err)
	assert.Same(t, expected, result)
	assert.Equal(t, 1, handler.calls)

	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).
		WithLabel(shell.LogAttrQueryType, "TestQuery").
		WithStatus(shell.StatusSuccess).
		WithLabel(shell.LogAttrBusinessOutcome, shell.OutcomeFound).
		Assert())
	assert.Zero(t, metricsCollector.CountCounterRecordsForMetric(shell.QueryHandlerAbsentMetric))

	span, found := tracingCollector.FindSpan(shell.SpanNameQueryHandle)
	require.True(t, found)
	assert.Equal(t, shell.OutcomeFound, span.EndAttributes[shell.LogAttrBusinessOutcome])

	completed, found := contextualLogger.FindRecord("info", shell.LogMsgQueryCompleted)
	require.True(t, found)
	outcome, _ := completed.Arg(shell.LogAttrBusinessOutcome)
	assert.Equal(t, shell.OutcomeFound, outcome)
}

func Test_QueryWrapper_Handle_AbsentResultIsNotAnError(t *testing.T) {
	// arrange
	handler := &mockQueryHandler{}
	metricsCollector := testdoubles.NewMetricsCollectorSpy(true)
	contextualLogger := testdoubles.NewContextualLoggerSpy(true)

	wrapper := newQueryWrapper(t, handler,
		observable.WithQueryMetrics[mockQuery, *mockResult](metricsCollector),
		observable.WithQueryContextualLogging[mockQuery, *mockResult](contextualLogger),
	)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{ID: 99})

	// assert
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithStatus(shell.StatusSuccess).
		WithLabel(shell.LogAttrBusinessOutcome, shell.OutcomeAbsent).
		Assert())
	assert.Equal(t, 1, metricsCollector.CountCounterRecordsForMetric(shell.QueryHandlerAbsentMetric))
	assert.False(t, contextualLogger.HasErrorLog(shell.LogMsgQueryFailed))
}

func Test_QueryWrapper_Handle_ErrorIsReturnedUnchanged(t *testing.T) {
	// arrange
	handlerErr := errors.New("connection refused")
	handler := &mockQueryHandler{err: handlerErr}
	metricsCollector := testdoubles.NewMetricsCollectorSpy(true)
	tracingCollector := testdoubles.NewTracingCollectorSpy(true)
	contextualLogger := testdoubles.NewContextualLoggerSpy(true)

	wrapper := newQueryWrapper(t, handler,
		observable.WithQueryMetrics[mockQuery, *mockResult](metricsCollector),
		observable.WithQueryTracing[mockQuery, *mockResult](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, *mockResult](contextualLogger),
	)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.Same(t, handlerErr, err)
	assert.Nil(t, result)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithStatus(shell.StatusError).
		Assert())

	span, found := tracingCollector.FindSpan(shell.SpanNameQueryHandle)
	require.True(t, found)
	assert.Equal(t, shell.StatusError, span.Status)
	assert.Equal(t, "connection refused", span.EndAttributes[shell.LogAttrError])
	assert.True(t, contextualLogger.HasErrorLog(shell.LogMsgQueryFailed))
}

func Test_QueryWrapper_Handle_CanceledQuery(t *testing.T) {
	// arrange
	handler := &mockQueryHandler{err: context.Canceled}
	metricsCollector := testdoubles.NewMetricsCollectorSpy(true)

	wrapper := newQueryWrapper(t, handler,
		observable.WithQueryMetrics[mockQuery, *mockResult](metricsCollector),
	)

	// act
	_, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, metricsCollector.CountCounterRecordsForMetric(shell.QueryHandlerCanceledMetric))
}

func Test_QueryWrapper_Handle_BasicLoggerFallback(t *testing.T) {
	// arrange
	logHandler := testdoubles.NewLogHandlerSpy(false)
	wrapper := newQueryWrapper(t, &mockQueryHandler{result: &mockResult{}},
		observable.WithQueryLogging[mockQuery, *mockResult](slog.New(logHandler)),
	)

	// act
	_, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	require.NoError(t, err)
	assert.True(t, logHandler.HasInfoLog(shell.LogMsgQueryStarted).WithAttr(shell.LogAttrQueryType, "TestQuery").Assert())
	assert.True(t, logHandler.HasInfoLog(shell.LogMsgQueryCompleted).WithAttr(shell.LogAttrStatus, shell.StatusSuccess).Assert())
}
