package updatebook

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	commandType = "UpdateBook"
)

// Command represents the intent to change the mutable fields of a book.
type Command struct {
	BookID   catalog.BookID
	Title    string
	SubTitle string
}

// CommandType returns the type of this command for observability and routing purposes.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID catalog.BookID, title string, subTitle string) Command {
	return Command{
		BookID:   bookID,
		Title:    title,
		SubTitle: subTitle,
	}
}
