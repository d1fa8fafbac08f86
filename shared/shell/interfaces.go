package shell

import (
	"context"
)

// Command represents the contract for all command types.
// Each command carries the intent and the parameters of one state change.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CommandHandler defines the contract for components that process commands.
// A handler loads the entity the command targets, changes or removes it, and reports failures as errors.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) error
}

// Query represents the contract for all query types.
// The QueryType method enables polymorphic handling and observability instrumentation.
type Query interface {
	QueryType() string
}

// QueryResult represents the contract for all query result types.
// IsAbsent reports a lookup that found nothing, which is a valid result and not an error.
type QueryResult interface {
	IsAbsent() bool
}

// QueryHandler defines the contract for components that process queries and return read models.
// The generic parameters Q and R ensure type safety between queries and their corresponding results.
type QueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
