package testdoubles

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

// AuthorRepositorySpy is a catalog.AuthorRepository that records calls and returns programmed results.
type AuthorRepositorySpy struct {
	callRecorder
	authors       map[catalog.AuthorID]*catalog.Author
	getAllResult  catalog.Authors
	getByIDCalls  []catalog.AuthorID
	addedAuthors  []*catalog.Author
	updateAuthors []*catalog.Author
	deleteAuthors []*catalog.Author
}

// NewAuthorRepositorySpy creates an AuthorRepositorySpy without any programmed results.
func NewAuthorRepositorySpy() *AuthorRepositorySpy {
	return &AuthorRepositorySpy{
		callRecorder: newCallRecorder(),
		authors:      make(map[catalog.AuthorID]*catalog.Author),
	}
}

// WithGetByIDResult makes GetByID return the given pointer for its AuthorID.
func (s *AuthorRepositorySpy) WithGetByIDResult(author *catalog.Author) *AuthorRepositorySpy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authors[author.AuthorID] = author

	return s
}

// WithGetAllResult makes GetAll return the given authors.
func (s *AuthorRepositorySpy) WithGetAllResult(authors catalog.Authors) *AuthorRepositorySpy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.getAllResult = authors

	return s
}

// WithError makes the given operation fail with err.
func (s *AuthorRepositorySpy) WithError(operation string, err error) *AuthorRepositorySpy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors[operation] = err

	return s
}

// WithOnGetByID registers a hook that runs inside every GetByID call.
func (s *AuthorRepositorySpy) WithOnGetByID(hook func(ctx context.Context)) *AuthorRepositorySpy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onGetByID = hook

	return s
}

// GetByID implements catalog.AuthorRepository.
func (s *AuthorRepositorySpy) GetByID(ctx context.Context, authorID catalog.AuthorID) (*catalog.Author, error) {
	s.runOnGetByID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.getByIDCalls = append(s.getByIDCalls, authorID)
	if err := s.record(OperationGetByID); err != nil {
		return nil, err
	}

	return s.authors[authorID], nil
}

// GetAll implements catalog.AuthorRepository.
func (s *AuthorRepositorySpy) GetAll(_ context.Context) (catalog.Authors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record(OperationGetAll); err != nil {
		return nil, err
	}

	if s.getAllResult == nil {
		return catalog.Authors{}, nil
	}

	return s.getAllResult, nil
}

// Add implements catalog.AuthorRepository, it assigns the next free id.
func (s *AuthorRepositorySpy) Add(_ context.Context, author *catalog.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addedAuthors = append(s.addedAuthors, author)
	if err := s.record(OperationAdd); err != nil {
		return err
	}

	author.AuthorID = catalog.AuthorID(len(s.addedAuthors))

	return nil
}

// Update implements catalog.AuthorRepository.
func (s *AuthorRepositorySpy) Update(_ context.Context, author *catalog.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateAuthors = append(s.updateAuthors, author)

	return s.record(OperationUpdate)
}

// Delete implements catalog.AuthorRepository.
func (s *AuthorRepositorySpy) Delete(_ context.Context, author *catalog.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteAuthors = append(s.deleteAuthors, author)

	return s.record(OperationDelete)
}

// GetByIDCalls returns the ids GetByID was called with.
func (s *AuthorRepositorySpy) GetByIDCalls() []catalog.AuthorID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]catalog.AuthorID(nil), s.getByIDCalls...)
}

// AddCalls returns the pointers Add was called with.
func (s *AuthorRepositorySpy) AddCalls() []*catalog.Author {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*catalog.Author(nil), s.addedAuthors...)
}

// UpdateCalls returns the pointers Update was called with.
func (s *AuthorRepositorySpy) UpdateCalls() []*catalog.Author {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*catalog.Author(nil), s.updateAuthors...)
}

// DeleteCalls returns the pointers Delete was called with.
func (s *AuthorRepositorySpy) DeleteCalls() []*catalog.Author {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*catalog.Author(nil), s.deleteAuthors...)
}

var _ catalog.AuthorRepository = (*AuthorRepositorySpy)(nil)
