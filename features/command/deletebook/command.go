package deletebook

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	commandType = "DeleteBook"
)

// Command represents the intent to delete an book.
type Command struct {
	BookID catalog.BookID
}

// CommandType returns the type of this command for observability and routing purposes.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID catalog.BookID) Command {
	return Command{
		BookID: bookID,
	}
}
