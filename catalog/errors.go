package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is the base error for a referenced entity that does not exist.
var ErrNotFound = errors.New("entity not found")

// ErrAuthorNotFound matches ErrNotFound with errors.Is.
var ErrAuthorNotFound = fmt.Errorf("author: %w", ErrNotFound)

// ErrBookNotFound matches ErrNotFound with errors.Is.
var ErrBookNotFound = fmt.Errorf("book: %w", ErrNotFound)

var ErrNilEntity = errors.New("nil entity supplied")
var ErrEntityAlreadyPersisted = errors.New("entity already has an identifier")

var ErrNilDatabaseConnection = errors.New("database connection is nil")
var ErrEmptyTableNameSupplied = errors.New("empty table name supplied")
var ErrBuildingQueryFailed = errors.New("building query failed")
var ErrQueryingFailed = errors.New("querying failed")
var ErrScanningDBRowFailed = errors.New("scanning db row failed")
var ErrExecutingFailed = errors.New("executing statement failed")
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
var ErrCreatingSchemaFailed = errors.New("creating schema failed")
var ErrSeedingFailed = errors.New("seeding repository failed")

// AuthorNotFound builds an error matching ErrAuthorNotFound and ErrNotFound that names the id.
func AuthorNotFound(authorID AuthorID) error {
	return fmt.Errorf("%w: author_id %d", ErrAuthorNotFound, authorID)
}

// BookNotFound builds an error matching ErrBookNotFound and ErrNotFound that names the id.
func BookNotFound(bookID BookID) error {
	return fmt.Errorf("%w: book_id %d", ErrBookNotFound, bookID)
}

// IsNotFound reports whether err signals a missing entity of any kind.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
