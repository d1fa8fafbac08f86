package main

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/oteladapters"
	"github.com/AntonStoeckl/authors-books-cqrs-go/shared/shell/config"
)

const instrumentationName = "github.com/AntonStoeckl/authors-books-cqrs-go"

// ObservabilityConfig holds the observability components handed to repositories and handler wrappers.
// MetricsCollector and TracingCollector are nil unless observability is enabled.
type ObservabilityConfig struct {
	Logger           *slog.Logger
	ContextualLogger catalog.ContextualLogger
	MetricsCollector catalog.MetricsCollector
	TracingCollector catalog.TracingCollector
	shutdown         func(ctx context.Context) error
}

// newObservabilityConfig always sets up trace-correlated JSON logging to stderr,
// OpenTelemetry metrics and tracing only if enabled in the config.
func newObservabilityConfig(ctx context.Context, cfg *config.AppConfig) (ObservabilityConfig, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return ObservabilityConfig{}, err
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	obsConfig := ObservabilityConfig{
		Logger:           slog.New(handler),
		ContextualLogger: oteladapters.NewSlogBridgeLoggerWithHandler(handler),
		shutdown:         func(context.Context) error { return nil },
	}

	if !cfg.ObservabilityEnabled {
		return obsConfig, nil
	}

	providers, err := config.NewObservabilityProviders(ctx, cfg)
	if err != nil {
		return ObservabilityConfig{}, err
	}

	obsConfig.MetricsCollector = oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))
	obsConfig.TracingCollector = oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))
	obsConfig.shutdown = providers.Shutdown

	return obsConfig, nil
}

// Shutdown flushes pending telemetry.
func (o ObservabilityConfig) Shutdown(ctx context.Context) error {
	return o.shutdown(ctx)
}
