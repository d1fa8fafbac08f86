package updateauthor

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// AuthorRepository defines the repository operations needed by the CommandHandler.
type AuthorRepository interface {
	GetByID(ctx context.Context, authorID catalog.AuthorID) (*catalog.Author, error)
	Update(ctx context.Context, author *catalog.Author) error
}

// CommandHandler orchestrates the Load -> Apply -> Update workflow.
type CommandHandler struct {
	repository AuthorRepository
}

// NewCommandHandler creates a new CommandHandler with the provided repository dependency.
func NewCommandHandler(repository AuthorRepository) CommandHandler {
	return CommandHandler{
		repository: repository,
	}
}

// Handle updates the author referenced by the command.
// Repository and context errors are returned unchanged, the repository is called at most once per operation.
func (h CommandHandler) Handle(ctx context.Context, command Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	author, err := h.repository.GetByID(ctx, command.AuthorID)
	if err != nil {
		return err
	}

	if author == nil {
		return catalog.AuthorNotFound(command.AuthorID)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	Apply(author, command)

	return h.repository.Update(ctx, author)
}
