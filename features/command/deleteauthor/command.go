package deleteauthor

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	commandType = "DeleteAuthor"
)

// Command represents the intent to delete an author.
type Command struct {
	AuthorID catalog.AuthorID
}

// CommandType returns the type of this command for observability and routing purposes.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(authorID catalog.AuthorID) Command {
	return Command{
		AuthorID: authorID,
	}
}
