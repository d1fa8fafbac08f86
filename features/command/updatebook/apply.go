package updatebook

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// Apply overwrites title and subtitle of the book with the values of the command, in place.
func Apply(book *catalog.Book, command Command) {
	book.Title = command.Title
	book.SubTitle = command.SubTitle
}
