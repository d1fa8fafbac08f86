package memoryengine

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// BookRepository is an in-memory catalog.BookRepository.
type BookRepository struct {
	books  *table[catalog.Book]
	logger catalog.Logger
}

// NewBookRepository creates an empty BookRepository, or a seeded one if WithSeedJSON is given.
func NewBookRepository(opts ...Option) (*BookRepository, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	repo := &BookRepository{
		books:  newTable[catalog.Book](),
		logger: o.logger,
	}

	if o.seedReader != nil {
		count, seedErr := seedTable(o.seedReader, repo.books, bookIDOf, assignBookID)
		if seedErr != nil {
			return nil, seedErr
		}

		logInfo(repo.logger, logMsgSeeded, logAttrEntity, entityBook, logAttrCount, count)
	}

	return repo, nil
}

// GetByID returns a copy of the stored book or nil if there is none with this id.
func (r *BookRepository) GetByID(ctx context.Context, bookID catalog.BookID) (*catalog.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	book, found := r.books.get(bookID)
	if !found {
		return nil, nil //nolint:nilnil // absence is not an error
	}

	return &book, nil
}

// GetAll returns copies of all stored books in insertion order.
func (r *BookRepository) GetAll(ctx context.Context) (catalog.Books, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.books.all(), nil
}

// Add stores the book and writes the assigned BookID into it.
func (r *BookRepository) Add(ctx context.Context, book *catalog.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if book == nil {
		return catalog.ErrNilEntity
	}

	if book.IsPersisted() {
		return catalog.ErrEntityAlreadyPersisted
	}

	book.BookID = r.books.insert(*book, assignBookID)
	logDebug(r.logger, logMsgOperation+opAdd, logAttrEntity, entityBook, logAttrID, book.BookID)

	return nil
}

// Update replaces the stored book having the same BookID.
func (r *BookRepository) Update(ctx context.Context, book *catalog.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if book == nil {
		return catalog.ErrNilEntity
	}

	if !r.books.replace(book.BookID, *book) {
		return catalog.BookNotFound(book.BookID)
	}

	logDebug(r.logger, logMsgOperation+opUpdate, logAttrEntity, entityBook, logAttrID, book.BookID)

	return nil
}

// Delete removes the stored book having the same BookID.
func (r *BookRepository) Delete(ctx context.Context, book *catalog.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if book == nil {
		return catalog.ErrNilEntity
	}

	if !r.books.remove(book.BookID) {
		return catalog.BookNotFound(book.BookID)
	}

	logDebug(r.logger, logMsgOperation+opDelete, logAttrEntity, entityBook, logAttrID, book.BookID)

	return nil
}

// Count returns the number of stored books.
func (r *BookRepository) Count() int {
	return r.books.count()
}

func bookIDOf(book catalog.Book) int64 {
	return book.BookID
}

func assignBookID(book *catalog.Book, id int64) {
	book.BookID = id
}

var _ catalog.BookRepository = (*BookRepository)(nil)
