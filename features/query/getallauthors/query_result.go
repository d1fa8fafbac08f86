package getallauthors

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// AuthorInfo represents one author in the list.
type AuthorInfo struct {
	AuthorID catalog.AuthorID `json:"author_id"`
	Name     string           `json:"name"`
}

// AuthorList represents the query result containing all authors.
type AuthorList struct {
	Authors []AuthorInfo `json:"authors"`
	Count   int          `json:"count"`
}

// IsAbsent always returns false, an empty list is a valid result.
func (r AuthorList) IsAbsent() bool {
	return false
}
