package getallbooks

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// BookInfo represents one book in the list.
type BookInfo struct {
	BookID   catalog.BookID `json:"book_id"`
	Title    string         `json:"title"`
	SubTitle string         `json:"sub_title,omitempty"`
}

// BookList represents the query result containing all books.
type BookList struct {
	Books []BookInfo `json:"books"`
	Count int        `json:"count"`
}

// IsAbsent always returns false, an empty list is a valid result.
func (r BookList) IsAbsent() bool {
	return false
}
