// Package postgresengine provides PostgreSQL implementations of the catalog.AuthorRepository and
// catalog.BookRepository contracts.
//
// The repositories can be created from three different connection types:
//   - pgxpool.Pool: NewAuthorRepositoryFromPGXPool, NewBookRepositoryFromPGXPool
//   - sql.DB (with the lib/pq driver): NewAuthorRepositoryFromSQLDB, NewBookRepositoryFromSQLDB
//   - sqlx.DB: NewAuthorRepositoryFromSQLX, NewBookRepositoryFromSQLX
//
// SQL statements are built with goqu using the postgres dialect. Default tables:
//
//	CREATE TABLE authors (author_id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL);
//	CREATE TABLE books (book_id BIGSERIAL PRIMARY KEY, title TEXT NOT NULL, sub_title TEXT NOT NULL DEFAULT '');
//
// CreateSchema creates the table if it does not exist yet. GetAll orders by the identifier,
// which equals the insertion order because identifiers come from a sequence.
// Update and Delete report the kind-specific NotFound error when no row was affected.
//
// Transient database failures (serialization failures, deadlocks, and for idempotent operations
// also connection exceptions) can be retried with exponential backoff, see WithRetry.
// Context cancellation and deadlines are never retried.
//
// Observability is optional and dependency-free: WithLogger, WithContextualLogger, WithMetrics, and
// WithTracing accept the interfaces from the catalog package, see the oteladapters package
// for OpenTelemetry implementations.
package postgresengine
