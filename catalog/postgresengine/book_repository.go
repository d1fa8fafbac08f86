package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/postgresengine/internal/adapters"
)

const (
	defaultBookTableName = "books"
	colBookID            = "book_id"
	colTitle             = "title"
	colSubTitle          = "sub_title"
	bookTableDDL         = "CREATE TABLE IF NOT EXISTS %s (book_id BIGSERIAL PRIMARY KEY, title TEXT NOT NULL, sub_title TEXT NOT NULL DEFAULT '')"
)

// BookRepository is a catalog.BookRepository backed by a PostgreSQL table.
type BookRepository struct {
	engine *engine
}

// NewBookRepositoryFromPGXPool creates a new BookRepository using a pgx Pool with optional configuration.
func NewBookRepositoryFromPGXPool(db *pgxpool.Pool, options ...Option) (*BookRepository, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newBookRepository(adapters.NewPGXAdapter(db), options...)
}

// NewBookRepositoryFromSQLDB creates a new BookRepository using a sql.DB with optional configuration.
func NewBookRepositoryFromSQLDB(db *sql.DB, options ...Option) (*BookRepository, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newBookRepository(adapters.NewSQLAdapter(db), options...)
}

// NewBookRepositoryFromSQLX creates a new BookRepository using a sqlx.DB with optional configuration.
func NewBookRepositoryFromSQLX(db *sqlx.DB, options ...Option) (*BookRepository, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newBookRepository(adapters.NewSQLXAdapter(db), options...)
}

func newBookRepository(db adapters.DBAdapter, options ...Option) (*BookRepository, error) {
	e, err := newEngine(db, entityBook, defaultBookTableName, options)
	if err != nil {
		return nil, err
	}

	return &BookRepository{engine: e}, nil
}

// CreateSchema creates the books table if it does not exist.
func (r *BookRepository) CreateSchema(ctx context.Context) error {
	return r.engine.createTable(ctx, fmt.Sprintf(bookTableDDL, pq.QuoteIdentifier(r.engine.tableName)))
}

// GetByID returns the book with this id or nil if there is none.
func (r *BookRepository) GetByID(ctx context.Context, bookID catalog.BookID) (*catalog.Book, error) {
	var found *catalog.Book

	err := r.engine.run(ctx, operationGetByID, true, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := r.selectBooks().Where(goqu.C(colBookID).Eq(bookID)).ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		books, err := queryRows(ctx, r.engine, sqlQuery, scanBook)
		if err != nil {
			return 0, err
		}

		found = nil
		if len(books) > 0 {
			found = &books[0]
		}

		return len(books), nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// GetAll returns all books ordered by id, which is their insertion order.
func (r *BookRepository) GetAll(ctx context.Context) (catalog.Books, error) {
	books := make(catalog.Books, 0)

	err := r.engine.run(ctx, operationGetAll, true, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := r.selectBooks().Order(goqu.C(colBookID).Asc()).ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		result, err := queryRows(ctx, r.engine, sqlQuery, scanBook)
		if err != nil {
			return 0, err
		}

		books = result

		return len(books), nil
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}

// Add inserts the book and writes the generated BookID into it.
func (r *BookRepository) Add(ctx context.Context, book *catalog.Book) error {
	if book == nil {
		return catalog.ErrNilEntity
	}

	if book.IsPersisted() {
		return catalog.ErrEntityAlreadyPersisted
	}

	return r.engine.run(ctx, operationAdd, false, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := postgres.
			Insert(r.engine.tableName).
			Rows(goqu.Record{colTitle: book.Title, colSubTitle: book.SubTitle}).
			Returning(goqu.C(colBookID)).
			ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		id, err := r.engine.insertReturningID(ctx, sqlQuery)
		if err != nil {
			return 0, err
		}

		book.BookID = id

		return 1, nil
	})
}

// Update writes the book's fields, it fails with catalog.ErrBookNotFound if no row has its id.
func (r *BookRepository) Update(ctx context.Context, book *catalog.Book) error {
	if book == nil {
		return catalog.ErrNilEntity
	}

	return r.engine.run(ctx, operationUpdate, true, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := postgres.
			Update(r.engine.tableName).
			Set(goqu.Record{colTitle: book.Title, colSubTitle: book.SubTitle}).
			Where(goqu.C(colBookID).Eq(book.BookID)).
			ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		return r.execExpectingRow(ctx, sqlQuery, book.BookID)
	})
}

// Delete removes the book, it fails with catalog.ErrBookNotFound if no row has its id.
func (r *BookRepository) Delete(ctx context.Context, book *catalog.Book) error {
	if book == nil {
		return catalog.ErrNilEntity
	}

	return r.engine.run(ctx, operationDelete, true, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := postgres.
			Delete(r.engine.tableName).
			Where(goqu.C(colBookID).Eq(book.BookID)).
			ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		return r.execExpectingRow(ctx, sqlQuery, book.BookID)
	})
}

func (r *BookRepository) selectBooks() *goqu.SelectDataset {
	return postgres.From(r.engine.tableName).Select(goqu.C(colBookID), goqu.C(colTitle), goqu.C(colSubTitle))
}

func (r *BookRepository) execExpectingRow(ctx context.Context, sqlQuery string, bookID catalog.BookID) (int, error) {
	rowsAffected, err := r.engine.exec(ctx, sqlQuery)
	if err != nil {
		return 0, err
	}

	if rowsAffected == 0 {
		return 0, catalog.BookNotFound(bookID)
	}

	return int(rowsAffected), nil
}

func scanBook(rows adapters.DBRows) (catalog.Book, error) {
	var book catalog.Book
	err := rows.Scan(&book.BookID, &book.Title, &book.SubTitle)

	return book, err
}

var _ catalog.BookRepository = (*BookRepository)(nil)
