package getauthor

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// AuthorRepository defines the repository operations needed by the QueryHandler.
type AuthorRepository interface {
	GetByID(ctx context.Context, authorID catalog.AuthorID) (*catalog.Author, error)
}

// QueryHandler orchestrates the Load -> Project workflow.
type QueryHandler struct {
	repository AuthorRepository
}

// NewQueryHandler creates a new QueryHandler with the provided repository dependency.
func NewQueryHandler(repository AuthorRepository) QueryHandler {
	return QueryHandler{
		repository: repository,
	}
}

// Handle returns the details of the requested author, or nil if it does not exist.
func (h QueryHandler) Handle(ctx context.Context, query Query) (*AuthorDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	author, err := h.repository.GetByID(ctx, query.AuthorID)
	if err != nil {
		return nil, err
	}

	return Project(author), nil
}
