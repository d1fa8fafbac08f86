// Package testdoubles provides test doubles (spies) for the catalog observability interfaces.
//
// This package contains spy implementations used by repository engine and handler tests:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures tracing spans with their start and finish attributes
//   - ContextualLoggerSpy: captures context-aware log calls
//   - LogHandlerSpy: a slog.Handler capturing records, for code that takes a *slog.Logger
//
// These test doubles enable testing of observability instrumentation without any telemetry backend.
package testdoubles
