package catalog

import "context"

// AuthorRepository is the persistence contract for authors.
//
// GetByID returns (nil, nil) if no author with the given id exists, absence is not an error.
// GetAll returns all authors in insertion order, an empty (non-nil) slice if there are none.
// Add assigns the AuthorID of the given author.
// Update and Delete take the full entity, typically the instance previously returned by GetByID.
type AuthorRepository interface {
	GetByID(ctx context.Context, authorID AuthorID) (*Author, error)
	GetAll(ctx context.Context) (Authors, error)
	Add(ctx context.Context, author *Author) error
	Update(ctx context.Context, author *Author) error
	Delete(ctx context.Context, author *Author) error
}

// BookRepository is the persistence contract for books.
//
// It follows the same rules as AuthorRepository.
type BookRepository interface {
	GetByID(ctx context.Context, bookID BookID) (*Book, error)
	GetAll(ctx context.Context) (Books, error)
	Add(ctx context.Context, book *Book) error
	Update(ctx context.Context, book *Book) error
	Delete(ctx context.Context, book *Book) error
}
