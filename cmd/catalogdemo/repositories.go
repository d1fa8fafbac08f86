package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/memoryengine"
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/postgresengine"
	"github.com/AntonStoeckl/authors-books-cqrs-go/shared/shell/config"
)

// Repositories bundles the configured repository engines and a function releasing their resources.
type Repositories struct {
	Authors catalog.AuthorRepository
	Books   catalog.BookRepository
	close   func()
}

// Close releases the database connections, if any.
func (r Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// initializeRepositories builds the configured engine and seeds it.
func initializeRepositories(
	ctx context.Context,
	cfg *config.AppConfig,
	obsConfig ObservabilityConfig,
	seed seedDocument,
) (Repositories, error) {

	switch cfg.Engine {
	case config.EngineMemory:
		return initializeMemoryRepositories(obsConfig, seed)
	case config.EnginePostgres:
		return initializePostgresRepositories(ctx, cfg, obsConfig, seed)
	default:
		return Repositories{}, fmt.Errorf("%w: unsupported engine %q", config.ErrInvalidConfig, cfg.Engine)
	}
}

func initializeMemoryRepositories(obsConfig ObservabilityConfig, seed seedDocument) (Repositories, error) {
	var options []memoryengine.Option
	if obsConfig.Logger != nil {
		options = append(options, memoryengine.WithLogger(obsConfig.Logger))
	}

	authors, err := memoryengine.NewAuthorRepository(
		append(options, memoryengine.WithSeedJSON(bytes.NewReader(seed.Authors)))...,
	)
	if err != nil {
		return Repositories{}, fmt.Errorf("failed to create author repository: %w", err)
	}

	books, err := memoryengine.NewBookRepository(
		append(options, memoryengine.WithSeedJSON(bytes.NewReader(seed.Books)))...,
	)
	if err != nil {
		return Repositories{}, fmt.Errorf("failed to create book repository: %w", err)
	}

	return Repositories{Authors: authors, Books: books}, nil
}

func initializePostgresRepositories(
	ctx context.Context,
	cfg *config.AppConfig,
	obsConfig ObservabilityConfig,
	seed seedDocument,
) (Repositories, error) {

	options := postgresOptions(obsConfig)

	var (
		authors *postgresengine.AuthorRepository
		books   *postgresengine.BookRepository
		closeDB func()
		err     error
	)

	switch cfg.PostgresAdapter {
	case config.AdapterPGX:
		poolConfig, configErr := config.PostgresPGXPoolConfig(cfg.PostgresDSN)
		if configErr != nil {
			return Repositories{}, fmt.Errorf("failed to parse postgres dsn: %w", configErr)
		}

		pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
		if poolErr != nil {
			return Repositories{}, fmt.Errorf("failed to create pgx pool: %w", poolErr)
		}

		if pingErr := pool.Ping(ctx); pingErr != nil {
			pool.Close()
			return Repositories{}, fmt.Errorf("failed to connect to database: %w", pingErr)
		}

		closeDB = pool.Close

		if authors, err = postgresengine.NewAuthorRepositoryFromPGXPool(pool, options...); err == nil {
			books, err = postgresengine.NewBookRepositoryFromPGXPool(pool, options...)
		}

	case config.AdapterSQL:
		db, dbErr := config.PostgresSQLDB(ctx, cfg.PostgresDSN)
		if dbErr != nil {
			return Repositories{}, fmt.Errorf("failed to connect to database: %w", dbErr)
		}

		closeDB = func() { _ = db.Close() }

		if authors, err = postgresengine.NewAuthorRepositoryFromSQLDB(db, options...); err == nil {
			books, err = postgresengine.NewBookRepositoryFromSQLDB(db, options...)
		}

	case config.AdapterSQLX:
		db, dbErr := config.PostgresSQLX(ctx, cfg.PostgresDSN)
		if dbErr != nil {
			return Repositories{}, fmt.Errorf("failed to connect to database: %w", dbErr)
		}

		closeDB = func() { _ = db.Close() }

		if authors, err = postgresengine.NewAuthorRepositoryFromSQLX(db, options...); err == nil {
			books, err = postgresengine.NewBookRepositoryFromSQLX(db, options...)
		}

	default:
		return Repositories{}, fmt.Errorf("%w: unsupported postgres adapter %q", config.ErrInvalidConfig, cfg.PostgresAdapter)
	}

	if err != nil {
		closeDB()
		return Repositories{}, fmt.Errorf("failed to create repositories: %w", err)
	}

	if err = authors.CreateSchema(ctx); err == nil {
		err = books.CreateSchema(ctx)
	}

	if err == nil {
		err = seedThroughRepositories(ctx, seed, authors, books)
	}

	if err != nil {
		closeDB()
		return Repositories{}, err
	}

	return Repositories{Authors: authors, Books: books, close: closeDB}, nil
}

func postgresOptions(obsConfig ObservabilityConfig) []postgresengine.Option {
	options := []postgresengine.Option{
		postgresengine.WithRetry(),
	}

	if obsConfig.ContextualLogger != nil {
		options = append(options, postgresengine.WithContextualLogger(obsConfig.ContextualLogger))
	}

	if obsConfig.MetricsCollector != nil {
		options = append(options, postgresengine.WithMetrics(obsConfig.MetricsCollector))
	}

	if obsConfig.TracingCollector != nil {
		options = append(options, postgresengine.WithTracing(obsConfig.TracingCollector))
	}

	return options
}
