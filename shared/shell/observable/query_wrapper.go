package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/authors-books-cqrs-go/shared/shell"
)

// QueryWrapper adds metrics, tracing, and logging to any query handler.
// Next to the status it reports the business outcome: found, or absent if the result reports IsAbsent.
type QueryWrapper[Q shell.Query, R shell.QueryResult] struct {
	coreHandler      shell.QueryHandler[Q, R]
	queryType        string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewQueryWrapper creates a new observable wrapper around the core query handler.
func NewQueryWrapper[Q shell.Query, R shell.QueryResult](
	coreHandler shell.QueryHandler[Q, R],
	opts ...QueryOption[Q, R],
) (*QueryWrapper[Q, R], error) {
	var zeroQuery Q

	wrapper := &QueryWrapper[Q, R]{
		coreHandler: coreHandler,
		queryType:   zeroQuery.QueryType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle executes the wrapped handler and records the outcome.
// Result and error of the wrapped handler are returned unchanged.
func (w *QueryWrapper[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	queryStart := time.Now()
	invocationID := newInvocationID()

	ctx, span := shell.StartQuerySpan(ctx, w.tracingCollector, w.queryType, invocationID)
	shell.LogStart(ctx, w.logger, w.contextualLogger, shell.LogMsgQueryStarted, shell.LogAttrQueryType, w.queryType, invocationID)

	result, err := w.coreHandler.Handle(ctx, query)

	duration := time.Since(queryStart)
	status := shell.StatusFromError(err)

	if err != nil {
		shell.RecordQueryMetrics(ctx, w.metricsCollector, w.queryType, status, "", duration)
		shell.FinishSpan(w.tracingCollector, span, status, "", duration, err)
		shell.LogFailure(
			ctx, w.logger, w.contextualLogger,
			shell.LogMsgQueryFailed, shell.LogAttrQueryType, w.queryType, invocationID,
			status, duration, err,
		)

		return result, err
	}

	businessOutcome := shell.OutcomeFound
	if result.IsAbsent() {
		businessOutcome = shell.OutcomeAbsent
	}

	shell.RecordQueryMetrics(ctx, w.metricsCollector, w.queryType, status, businessOutcome, duration)
	shell.FinishSpan(w.tracingCollector, span, status, businessOutcome, duration, nil)
	shell.LogSuccess(
		ctx, w.logger, w.contextualLogger,
		shell.LogMsgQueryCompleted, shell.LogAttrQueryType, w.queryType, invocationID,
		businessOutcome, duration,
	)

	return result, nil
}

// QueryOption defines a functional option for configuring QueryWrapper.
type QueryOption[Q shell.Query, R shell.QueryResult] func(*QueryWrapper[Q, R]) error

// WithQueryMetrics sets the metrics collector for the QueryWrapper.
func WithQueryMetrics[Q shell.Query, R shell.QueryResult](collector shell.MetricsCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithQueryTracing sets the tracing collector for the QueryWrapper.
func WithQueryTracing[Q shell.Query, R shell.QueryResult](collector shell.TracingCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithQueryContextualLogging sets the contextual logger for the QueryWrapper.
func WithQueryContextualLogging[Q shell.Query, R shell.QueryResult](logger shell.ContextualLogger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithQueryLogging sets the basic logger for the QueryWrapper.
func WithQueryLogging[Q shell.Query, R shell.QueryResult](logger shell.Logger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.logger = logger
		return nil
	}
}
