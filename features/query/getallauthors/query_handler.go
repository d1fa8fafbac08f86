package getallauthors

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// AuthorRepository defines the repository operations needed by the QueryHandler.
type AuthorRepository interface {
	GetAll(ctx context.Context) (catalog.Authors, error)
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

// Handle returns all authors.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (AuthorList, error) {
	if err := ctx.Err(); err != nil {
		return AuthorList{}, err
	}

	authors, err := h.repository.GetAll(ctx)
	if err != nil {
		return AuthorList{}, err
	}

	return Project(authors), nil
}
