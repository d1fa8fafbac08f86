package getauthor

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	queryType = "GetAuthor"
)

// Query represents the input for looking up one author.
type Query struct {
	AuthorID catalog.AuthorID
}

// BuildQuery creates a new Query for the given author.
func BuildQuery(authorID catalog.AuthorID) Query {
	return Query{
		AuthorID: authorID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
