// Package observable provides wrapper components for instrumenting command and query handlers
// with metrics, tracing, and logging while keeping the handlers free of infrastructure code.
//
// The wrappers are applied externally at wiring time, not hidden inside factory functions:
//
//	coreHandler := deleteauthor.NewCommandHandler(authorRepository)
//
//	handler, err := observable.NewCommandWrapper[deleteauthor.Command](
//		coreHandler,
//		observable.WithCommandMetrics[deleteauthor.Command](metricsCollector),
//		observable.WithCommandTracing[deleteauthor.Command](tracingCollector),
//		observable.WithCommandContextualLogging[deleteauthor.Command](contextualLogger),
//	)
//
//	err = handler.Handle(ctx, deleteauthor.BuildCommand(42))
//
// Query handlers are wrapped the same way with NewQueryWrapper, the wrapper additionally reports
// whether the result was found or absent.
//
// Every invocation gets a time-ordered invocation id that is attached to its span and its log lines.
// Errors of the wrapped handler are returned unchanged, so errors.Is keeps working for callers.
//
// For unit tests focused on business logic, use the handlers without wrapping.
package observable
