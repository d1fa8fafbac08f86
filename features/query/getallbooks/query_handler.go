package getallbooks

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// BookRepository defines the repository operations needed by the QueryHandler.
type BookRepository interface {
	GetAll(ctx context.Context) (catalog.Books, error)
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

// Handle returns all books.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (BookList, error) {
	if err := ctx.Err(); err != nil {
		return BookList{}, err
	}

	books, err := h.repository.GetAll(ctx)
	if err != nil {
		return BookList{}, err
	}

	return Project(books), nil
}
