package getauthor

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// Project maps a loaded author to the query result, nil stays nil.
func Project(author *catalog.Author) *AuthorDetails {
	if author == nil {
		return nil
	}

	return &AuthorDetails{
		AuthorID: author.AuthorID,
		Name:     author.Name,
	}
}
