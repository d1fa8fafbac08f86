package updatebook

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// BookRepository defines the repository operations needed by the CommandHandler.
type BookRepository interface {
	GetByID(ctx context.Context, bookID catalog.BookID) (*catalog.Book, error)
	Update(ctx context.Context, book *catalog.Book) error
}

// CommandHandler orchestrates the Load -> Apply -> Update workflow.
type CommandHandler struct {
	repository BookRepository
}

// NewCommandHandler creates a new CommandHandler with the provided repository dependency.
func NewCommandHandler(repository BookRepository) CommandHandler {
	return CommandHandler{
		repository: repository,
	}
}

// Handle updates the book referenced by the command.
func (h CommandHandler) Handle(ctx context.Context, command Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	book, err := h.repository.GetByID(ctx, command.BookID)
	if err != nil {
		return err
	}

	if book == nil {
		return catalog.BookNotFound(command.BookID)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	Apply(book, command)

	return h.repository.Update(ctx, book)
}
