package catalog

// BookID is an alias type for the identifier of a Book, assigned by the repository on Add.
type BookID = int64

// Books is an alias type for a slice of Book.
type Books = []Book

// Book is a published title, optionally with a subtitle.
//
// An empty SubTitle means the book has none.
type Book struct {
	BookID   BookID `json:"book_id"`
	Title    string `json:"title"`
	SubTitle string `json:"sub_title,omitempty"`
}

// BuildBook creates a not yet persisted Book.
func BuildBook(title string, subTitle string) Book {
	return Book{
		Title:    title,
		SubTitle: subTitle,
	}
}

// HasSubTitle reports whether the Book has a subtitle.
func (b Book) HasSubTitle() bool {
	return b.SubTitle != ""
}

// IsPersisted reports whether the Book already got an identifier from a repository.
func (b Book) IsPersisted() bool {
	return b.BookID != 0
}
