package testdoubles

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// BookRepositorySpy is a catalog.BookRepository that records calls and returns programmed results.
type BookRepositorySpy struct {
	callRecorder
	books        map[catalog.BookID]*catalog.Book
	getAllResult catalog.Books
	getByIDCalls []catalog.BookID
	addedBooks   []*catalog.Book
	updateBooks  []*catalog.Book
	deleteBooks  []*catalog.Book
}

// NewBookRepositorySpy creates a BookRepositorySpy without any programmed results.
func NewBookRepositorySpy() *BookRepositorySpy {
	return &BookRepositorySpy{
		callRecorder: newCallRecorder(),
		books:        make(map[catalog.BookID]*catalog.Book),
	}
}

// WithGetByIDResult makes GetByID return the given pointer for its BookID.
func (s *BookRepositorySpy) WithGetByIDResult(book *catalog.Book) *BookRepositorySpy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[book.BookID] = book

	return s
}

// WithGetAllResult makes GetAll return the given books.
func (s *BookRepositorySpy) WithGetAllResult(books catalog.Books) *BookRepositorySpy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.getAllResult = books

	return s
}

// WithError makes the given operation fail with err.
func (s *BookRepositorySpy) WithError(operation string, err error) *BookRepositorySpy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors[operation] = err

	return s
}

// WithOnGetByID registers a hook that runs inside every GetByID call.
func (s *BookRepositorySpy) WithOnGetByID(hook func(ctx context.Context)) *BookRepositorySpy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onGetByID = hook

	return s
}

// GetByID implements catalog.BookRepository.
func (s *BookRepositorySpy) GetByID(ctx context.Context, bookID catalog.BookID) (*catalog.Book, error) {
	s.runOnGetByID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.getByIDCalls = append(s.getByIDCalls, bookID)
	if err := s.record(OperationGetByID); err != nil {
		return nil, err
	}

	return s.books[bookID], nil
}

// GetAll implements catalog.BookRepository.
func (s *BookRepositorySpy) GetAll(_ context.Context) (catalog.Books, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record(OperationGetAll); err != nil {
		return nil, err
	}

	if s.getAllResult == nil {
		return catalog.Books{}, nil
	}

	return s.getAllResult, nil
}

// Add implements catalog.BookRepository, it assigns the next free id.
func (s *BookRepositorySpy) Add(_ context.Context, book *catalog.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addedBooks = append(s.addedBooks, book)
	if err := s.record(OperationAdd); err != nil {
		return err
	}

	book.BookID = catalog.BookID(len(s.addedBooks))

	return nil
}

// Update implements catalog.BookRepository.
func (s *BookRepositorySpy) Update(_ context.Context, book *catalog.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateBooks = append(s.updateBooks, book)

	return s.record(OperationUpdate)
}

// Delete implements catalog.BookRepository.
func (s *BookRepositorySpy) Delete(_ context.Context, book *catalog.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteBooks = append(s.deleteBooks, book)

	return s.record(OperationDelete)
}

// GetByIDCalls returns the ids GetByID was called with.
func (s *BookRepositorySpy) GetByIDCalls() []catalog.BookID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]catalog.BookID(nil), s.getByIDCalls...)
}

// AddCalls returns the pointers Add was called with.
func (s *BookRepositorySpy) AddCalls() []*catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*catalog.Book(nil), s.addedBooks...)
}

// UpdateCalls returns the pointers Update was called with.
func (s *BookRepositorySpy) UpdateCalls() []*catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*catalog.Book(nil), s.updateBooks...)
}

// DeleteCalls returns the pointers Delete was called with.
func (s *BookRepositorySpy) DeleteCalls() []*catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*catalog.Book(nil), s.deleteBooks...)
}

var _ catalog.BookRepository = (*BookRepositorySpy)(nil)
