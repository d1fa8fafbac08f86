package memoryengine

import (
	"context"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

const (
	entityAuthor    = "author"
	entityBook      = "book"
	logMsgOperation = "memory repository operation: "
	logMsgSeeded    = "memory repository seeded"
	logAttrEntity   = "entity"
	logAttrID       = "id"
	logAttrCount    = "count"
	opAdd           = "add"
	opUpdate        = "update"
	opDelete        = "delete"
)

// AuthorRepository is an in-memory catalog.AuthorRepository.
type AuthorRepository struct {
	authors *table[catalog.Author]
	logger  catalog.Logger
}

// NewAuthorRepository creates an empty AuthorRepository, or a seeded one if WithSeedJSON is given.
func NewAuthorRepository(opts ...Option) (*AuthorRepository, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	repo := &AuthorRepository{
		authors: newTable[catalog.Author](),
		logger:  o.logger,
	}

	if o.seedReader != nil {
		count, seedErr := seedTable(o.seedReader, repo.authors, authorIDOf, assignAuthorID)
		if seedErr != nil {
			return nil, seedErr
		}

		logInfo(repo.logger, logMsgSeeded, logAttrEntity, entityAuthor, logAttrCount, count)
	}

	return repo, nil
}

// GetByID returns a copy of the stored author or nil if there is none with this id.
func (r *AuthorRepository) GetByID(ctx context.Context, authorID catalog.AuthorID) (*catalog.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	author, found := r.authors.get(authorID)
	if !found {
		return nil, nil //nolint:nilnil // absence is not an error
	}

	return &author, nil
}

// GetAll returns copies of all stored authors in insertion order.
func (r *AuthorRepository) GetAll(ctx context.Context) (catalog.Authors, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.authors.all(), nil
}

// Add stores the author and writes the assigned AuthorID into it.
func (r *AuthorRepository) Add(ctx context.Context, author *catalog.Author) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if author == nil {
		return catalog.ErrNilEntity
	}

	if author.IsPersisted() {
		return catalog.ErrEntityAlreadyPersisted
	}

	author.AuthorID = r.authors.insert(*author, assignAuthorID)
	logDebug(r.logger, logMsgOperation+opAdd, logAttrEntity, entityAuthor, logAttrID, author.AuthorID)

	return nil
}

// Update replaces the stored author having the same AuthorID.
func (r *AuthorRepository) Update(ctx context.Context, author *catalog.Author) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if author == nil {
		return catalog.ErrNilEntity
	}

	if !r.authors.replace(author.AuthorID, *author) {
		return catalog.AuthorNotFound(author.AuthorID)
	}

	logDebug(r.logger, logMsgOperation+opUpdate, logAttrEntity, entityAuthor, logAttrID, author.AuthorID)

	return nil
}

// Delete removes the stored author having the same AuthorID.
func (r *AuthorRepository) Delete(ctx context.Context, author *catalog.Author) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if author == nil {
		return catalog.ErrNilEntity
	}

	if !r.authors.remove(author.AuthorID) {
		return catalog.AuthorNotFound(author.AuthorID)
	}

	logDebug(r.logger, logMsgOperation+opDelete, logAttrEntity, entityAuthor, logAttrID, author.AuthorID)

	return nil
}

// Count returns the number of stored authors.
func (r *AuthorRepository) Count() int {
	return r.authors.count()
}

func authorIDOf(author catalog.Author) int64 {
	return author.AuthorID
}

func assignAuthorID(author *catalog.Author, id int64) {
	author.AuthorID = id
}

func logDebug(logger catalog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

func logInfo(logger catalog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

var _ catalog.AuthorRepository = (*AuthorRepository)(nil)
