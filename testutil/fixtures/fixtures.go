// Package fixtures provides sample authors and books for tests and the demo.
//
// Every function returns fresh values, so tests can mutate them freely.
package fixtures

import "github.com/AntonStoeckl/authors-books-cqrs-go/catalog"

// Identifiers used by the sample data.
const (
	JohnDoeID       catalog.AuthorID = 42
	JaneRoeID       catalog.AuthorID = 43
	MissingAuthorID catalog.AuthorID = 99

	ExistingBookID catalog.BookID = 21
	SecondBookID   catalog.BookID = 22
	MissingBookID  catalog.BookID = 99
)

// JohnDoe returns the author with id 42.
func JohnDoe() *catalog.Author {
	return &catalog.Author{AuthorID: JohnDoeID, Name: "John Doe"}
}

// JaneRoe returns the author with id 43.
func JaneRoe() *catalog.Author {
	return &catalog.Author{AuthorID: JaneRoeID, Name: "Jane Roe"}
}

// ExistingBook returns the book with id 21.
func ExistingBook() *catalog.Book {
	return &catalog.Book{BookID: ExistingBookID, Title: "Existing Title", SubTitle: "Existing Subtitle"}
}

// SecondBook returns the book with id 22, which has no subtitle.
func SecondBook() *catalog.Book {
	return &catalog.Book{BookID: SecondBookID, Title: "Learning Domain-Driven Design"}
}

// Authors returns all sample authors ordered by id.
func Authors() catalog.Authors {
	return catalog.Authors{*JohnDoe(), *JaneRoe()}
}

// Books returns all sample books ordered by id.
func Books() catalog.Books {
	return catalog.Books{*ExistingBook(), *SecondBook()}
}
