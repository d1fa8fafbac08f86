package getallauthors

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// Project maps the authors 1:1 into the list result, keeping their order.
func Project(authors catalog.Authors) AuthorList {
	infos := make([]AuthorInfo, 0, len(authors))

	for _, author := range authors {
		infos = append(infos, AuthorInfo{
			AuthorID: author.AuthorID,
			Name:     author.Name,
		})
	}

	return AuthorList{
		Authors: infos,
		Count:   len(infos),
	}
}
