package getbook

import (
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// Project maps a loaded book to the query result, nil stays nil.
func Project(book *catalog.Book) *BookDetails {
	if book == nil {
		return nil
	}

	return &BookDetails{
		BookID:   book.BookID,
		Title:    book.Title,
		SubTitle: book.SubTitle,
	}
}
