package deletebook

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// BookRepository defines the repository operations needed by the CommandHandler.
type BookRepository interface {
	GetByID(ctx context.Context, bookID catalog.BookID) (*catalog.Book, error)
	Delete(ctx context.Context, book *catalog.Book) error
}

// CommandHandler orchestrates the Load -> Delete workflow.
type CommandHandler struct {
	repository BookRepository
}

// NewCommandHandler creates a new CommandHandler with the provided repository dependency.
func NewCommandHandler(repository BookRepository) CommandHandler {
	return CommandHandler{
		repository: repository,
	}
}

// Handle deletes the book referenced by the command.
// Repository and context errors are returned unchanged.
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

	// no write after cancellation
	if err = ctx.Err(); err != nil {
		return err
	}

	return h.repository.Delete(ctx, book)
}
