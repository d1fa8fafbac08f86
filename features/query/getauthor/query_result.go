package getauthor

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// AuthorDetails represents the query result for a found author.
type AuthorDetails struct {
	AuthorID catalog.AuthorID `json:"author_id"`
	Name     string           `json:"name"`
}

// IsAbsent reports whether no author was found, which is the case for a nil result.
func (r *AuthorDetails) IsAbsent() bool {
	return r == nil
}
