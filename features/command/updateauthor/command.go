package updateauthor

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	commandType = "UpdateAuthor"
)

// Command represents the intent to change the mutable fields of an author.
type Command struct {
	AuthorID catalog.AuthorID
	Name     string
}

// CommandType returns the type of this command for observability and routing purposes.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(authorID catalog.AuthorID, name string) Command {
	return Command{
		AuthorID: authorID,
		Name:     name,
	}
}
