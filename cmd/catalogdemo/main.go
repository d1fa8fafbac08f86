// Command catalogdemo wires the author and book handlers to a repository engine
// and runs a fixed scenario against them, printing a JSON report to stdout.
//
// Configuration is read from an optional config file and CATALOG_* environment variables,
// see config.LoadAppConfig.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AntonStoeckl/authors-books-cqrs-go/shared/shell/config"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("catalog demo failed: %v", err)
	}
}

func run() error {
	configFile := flag.String("config", "", "path to an optional config file (yaml, json, toml)")
	flag.Parse()

	cfg, err := config.LoadAppConfig(*configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obsConfig, err := newObservabilityConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up observability: %w", err)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if shutdownErr := obsConfig.Shutdown(shutdownCtx); shutdownErr != nil {
			obsConfig.Logger.Warn("observability shutdown failed", "error", shutdownErr.Error())
		}
	}()

	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}

	repositories, err := initializeRepositories(ctx, cfg, obsConfig, seed)
	if err != nil {
		return err
	}
	defer repositories.Close()

	obsConfig.Logger.Info("catalog demo started",
		"engine", cfg.Engine,
		"postgres_adapter", cfg.PostgresAdapter,
		"observability_enabled", cfg.ObservabilityEnabled,
	)

	handlers, err := NewHandlerBundle(repositories.Authors, repositories.Books, obsConfig)
	if err != nil {
		return err
	}

	steps, err := runScenario(ctx, handlers, cfg.OperationTimeout)
	if writeErr := writeReport(os.Stdout, steps); writeErr != nil {
		return fmt.Errorf("failed to write report: %w", writeErr)
	}

	if err != nil {
		return fmt.Errorf("scenario aborted: %w", err)
	}

	return nil
}
