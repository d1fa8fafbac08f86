// Package config provides configuration for the catalog demo and its tests.
//
// AppConfig is loaded with viper from defaults, an optional config file and environment
// variables prefixed with CATALOG_. The package also contains factory functions for PostgreSQL
// connections using the three supported drivers (pgx.Pool, sql.DB, sqlx.DB) with pre-configured
// pool settings, and the OpenTelemetry provider setup used when observability is enabled.
//
// This package is part of the shell (infrastructure) layer.
package config
