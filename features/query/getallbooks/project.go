package getallbooks

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// Project maps the books 1:1 into the list result, keeping their order.
func Project(books catalog.Books) BookList {
	infos := make([]BookInfo, 0, len(books))

	for _, book := range books {
		infos = append(infos, BookInfo{
			BookID:   book.BookID,
			Title:    book.Title,
			SubTitle: book.SubTitle,
		})
	}

	return BookList{
		Books: infos,
		Count: len(infos),
	}
}
