// Package adapters provide database adapter implementations for the PostgreSQL repositories.
//
// This package implements the adapter pattern to support multiple PostgreSQL database libraries:
// pgx.Pool, sql.DB, and sqlx.DB. All adapters provide equivalent functionality through
// the common DBAdapter interface, so the repositories work with any supported connection type.
package adapters
