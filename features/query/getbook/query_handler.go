package getbook

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// BookRepository defines the repository operations needed by the QueryHandler.
type BookRepository interface {
	GetByID(ctx context.Context, bookID catalog.BookID) (*catalog.Book, error)
}

// QueryHandler orchestrates the Load -> Project workflow.
type QueryHandler struct {
	repository BookRepository
}

// NewQueryHandler creates a new QueryHandler with the provided repository dependency.
func NewQueryHandler(repository BookRepository) QueryHandler {
	return QueryHandler{
		repository: repository,
	}
}

// Handle returns the details of the requested book, or nil if it does not exist.
func (h QueryHandler) Handle(ctx context.Context, query Query) (*BookDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	book, err := h.repository.GetByID(ctx, query.BookID)
	if err != nil {
		return nil, err
	}

	return Project(book), nil
}
