package getbook

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	queryType = "GetBook"
)

// Query represents the input for looking up one book.
type Query struct {
	BookID catalog.BookID
}

// BuildQuery creates a new Query for the given book.
func BuildQuery(bookID catalog.BookID) Query {
	return Query{
		BookID: bookID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
