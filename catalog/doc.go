// Package catalog provides the core abstractions and types for managing authors and books
// through a repository.
//
// This package defines the entities, the repository contracts consumed by the command and
// query handlers, the error taxonomy shared by all repository engines, and the dependency-free
// observability interfaces.
//
// Key types:
//   - Author, Book: The two entity kinds, identified by an AuthorID / BookID assigned on Add
//   - AuthorRepository, BookRepository: Persistence contracts implemented by the engines
//   - Logger, ContextualLogger, MetricsCollector, TracingCollector: Observability hooks
//
// Repository engines:
//   - memoryengine: Single-process in-memory storage
//   - postgresengine: PostgreSQL storage via pgx.Pool, sql.DB, or sqlx.DB
//
// Common usage pattern:
//
//	author := catalog.BuildAuthor("John Doe")
//	if err := repo.Add(ctx, &author); err != nil {
//		// handle error
//	}
//
//	found, err := repo.GetByID(ctx, author.AuthorID)
//	if err != nil {
//		// handle error
//	}
//	if found == nil {
//		// absent, not an error
//	}
package catalog
