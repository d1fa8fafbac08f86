package catalog

// AuthorID is an alias type for the identifier of an Author, assigned by the repository on Add.
type AuthorID = int64

// Authors is an alias type for a slice of Author.
type Authors = []Author

// Author is a person who writes books.
//
// The AuthorID is zero until the Author was added to a repository and must never be changed afterward.
type Author struct {
	AuthorID AuthorID `json:"author_id"`
	Name     string   `json:"name"`
}

// BuildAuthor creates a not yet persisted Author with the given name.
func BuildAuthor(name string) Author {
	return Author{Name: name}
}

// IsPersisted reports whether the Author already got an identifier from a repository.
func (a Author) IsPersisted() bool {
	return a.AuthorID != 0
}
