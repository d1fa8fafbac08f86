package getbook

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// BookDetails represents the query result for a found book.
type BookDetails struct {
	BookID   catalog.BookID `json:"book_id"`
	Title    string         `json:"title"`
	SubTitle string         `json:"sub_title,omitempty"`
}

// IsAbsent reports whether no book was found, which is the case for a nil result.
func (r *BookDetails) IsAbsent() bool {
	return r == nil
}
