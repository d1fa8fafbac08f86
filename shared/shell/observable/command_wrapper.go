package observable

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/authors-books-cqrs-go/shared/shell"
)

// CommandWrapper adds metrics, tracing, and logging to any command handler.
// It delegates all business logic to the wrapped handler.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CommandHandler[C]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {
	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle executes the wrapped handler and records the outcome.
// The error of the wrapped handler is returned unchanged.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) error {
	commandStart := time.Now()
	invocationID := newInvocationID()

	ctx, span := shell.StartCommandSpan(ctx, w.tracingCollector, w.commandType, invocationID)
	shell.LogStart(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType, invocationID)

	err := w.coreHandler.Handle(ctx, command)

	duration := time.Since(commandStart)
	status := shell.StatusFromError(err)

	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)

	if err != nil {
		shell.FinishSpan(w.tracingCollector, span, status, "", duration, err)
		shell.LogFailure(
			ctx, w.logger, w.contextualLogger,
			shell.LogMsgCommandFailed, shell.LogAttrCommandType, w.commandType, invocationID,
			status, duration, err,
		)

		return err
	}

	shell.FinishSpan(w.tracingCollector, span, status, shell.OutcomeApplied, duration, nil)
	shell.LogSuccess(
		ctx, w.logger, w.contextualLogger,
		shell.LogMsgCommandCompleted, shell.LogAttrCommandType, w.commandType, invocationID,
		shell.OutcomeApplied, duration,
	)

	return nil
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector for the CommandWrapper.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger for the CommandWrapper.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger for the CommandWrapper.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.logger = logger
		return nil
	}
}

// newInvocationID returns a UUIDv7, falling back to a random UUID if the clock source fails.
func newInvocationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
