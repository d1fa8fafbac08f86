package updateauthor

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// Apply overwrites all mutable fields of the author with the values of the command, in place.
// The AuthorID is never touched.
func Apply(author *catalog.Author, command Command) {
	author.Name = command.Name
}
