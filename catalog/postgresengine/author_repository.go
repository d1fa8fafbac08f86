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
	defaultAuthorTableName = "authors"
	colAuthorID            = "author_id"
	colName                = "name"
	authorTableDDL         = "CREATE TABLE IF NOT EXISTS %s (author_id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL)"
)

// AuthorRepository is a catalog.AuthorRepository backed by a PostgreSQL table.
type AuthorRepository struct {
	engine *engine
}

// NewAuthorRepositoryFromPGXPool creates a new AuthorRepository using a pgx Pool with optional configuration.
func NewAuthorRepositoryFromPGXPool(db *pgxpool.Pool, options ...Option) (*AuthorRepository, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newAuthorRepository(adapters.NewPGXAdapter(db), options...)
}

// NewAuthorRepositoryFromSQLDB creates a new AuthorRepository using a sql.DB with optional configuration.
func NewAuthorRepositoryFromSQLDB(db *sql.DB, options ...Option) (*AuthorRepository, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newAuthorRepository(adapters.NewSQLAdapter(db), options...)
}

// NewAuthorRepositoryFromSQLX creates a new AuthorRepository using a sqlx.DB with optional configuration.
func NewAuthorRepositoryFromSQLX(db *sqlx.DB, options ...Option) (*AuthorRepository, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newAuthorRepository(adapters.NewSQLXAdapter(db), options...)
}

func newAuthorRepository(db adapters.DBAdapter, options ...Option) (*AuthorRepository, error) {
	e, err := newEngine(db, entityAuthor, defaultAuthorTableName, options)
	if err != nil {
		return nil, err
	}

	return &AuthorRepository{engine: e}, nil
}

// CreateSchema creates the authors table if it does not exist.
func (r *AuthorRepository) CreateSchema(ctx context.Context) error {
	return r.engine.createTable(ctx, fmt.Sprintf(authorTableDDL, pq.QuoteIdentifier(r.engine.tableName)))
}

// GetByID returns the author with this id or nil if there is none.
func (r *AuthorRepository) GetByID(ctx context.Context, authorID catalog.AuthorID) (*catalog.Author, error) {
	var found *catalog.Author

	err := r.engine.run(ctx, operationGetByID, true, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := r.selectAuthors().Where(goqu.C(colAuthorID).Eq(authorID)).ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		authors, err := queryRows(ctx, r.engine, sqlQuery, scanAuthor)
		if err != nil {
			return 0, err
		}

		found = nil
		if len(authors) > 0 {
			found = &authors[0]
		}

		return len(authors), nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// GetAll returns all authors ordered by id, which is their insertion order.
func (r *AuthorRepository) GetAll(ctx context.Context) (catalog.Authors, error) {
	authors := make(catalog.Authors, 0)

	err := r.engine.run(ctx, operationGetAll, true, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := r.selectAuthors().Order(goqu.C(colAuthorID).Asc()).ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		result, err := queryRows(ctx, r.engine, sqlQuery, scanAuthor)
		if err != nil {
			return 0, err
		}

		authors = result

		return len(authors), nil
	})
	if err != nil {
		return nil, err
	}

	return authors, nil
}

// Add inserts the author and writes the generated AuthorID into it.
func (r *AuthorRepository) Add(ctx context.Context, author *catalog.Author) error {
	if author == nil {
		return catalog.ErrNilEntity
	}

	if author.IsPersisted() {
		return catalog.ErrEntityAlreadyPersisted
	}

	return r.engine.run(ctx, operationAdd, false, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := postgres.
			Insert(r.engine.tableName).
			Rows(goqu.Record{colName: author.Name}).
			Returning(goqu.C(colAuthorID)).
			ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		id, err := r.engine.insertReturningID(ctx, sqlQuery)
		if err != nil {
			return 0, err
		}

		author.AuthorID = id

		return 1, nil
	})
}

// Update writes the author's fields, it fails with catalog.ErrAuthorNotFound if no row has its id.
func (r *AuthorRepository) Update(ctx context.Context, author *catalog.Author) error {
	if author == nil {
		return catalog.ErrNilEntity
	}

	return r.engine.run(ctx, operationUpdate, true, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := postgres.
			Update(r.engine.tableName).
			Set(goqu.Record{colName: author.Name}).
			Where(goqu.C(colAuthorID).Eq(author.AuthorID)).
			ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		return r.execExpectingRow(ctx, sqlQuery, author.AuthorID)
	})
}

// Delete removes the author, it fails with catalog.ErrAuthorNotFound if no row has its id.
func (r *AuthorRepository) Delete(ctx context.Context, author *catalog.Author) error {
	if author == nil {
		return catalog.ErrNilEntity
	}

	return r.engine.run(ctx, operationDelete, true, func(ctx context.Context) (int, error) {
		sqlQuery, _, buildErr := postgres.
			Delete(r.engine.tableName).
			Where(goqu.C(colAuthorID).Eq(author.AuthorID)).
			ToSQL()
		if buildErr != nil {
			return 0, errors.Join(catalog.ErrBuildingQueryFailed, buildErr)
		}

		return r.execExpectingRow(ctx, sqlQuery, author.AuthorID)
	})
}

func (r *AuthorRepository) selectAuthors() *goqu.SelectDataset {
	return postgres.From(r.engine.tableName).Select(goqu.C(colAuthorID), goqu.C(colName))
}

func (r *AuthorRepository) execExpectingRow(ctx context.Context, sqlQuery string, authorID catalog.AuthorID) (int, error) {
	rowsAffected, err := r.engine.exec(ctx, sqlQuery)
	if err != nil {
		return 0, err
	}

	if rowsAffected == 0 {
		return 0, catalog.AuthorNotFound(authorID)
	}

	return int(rowsAffected), nil
}

func scanAuthor(rows adapters.DBRows) (catalog.Author, error) {
	var author catalog.Author
	err := rows.Scan(&author.AuthorID, &author.Name)

	return author, err
}

var _ catalog.AuthorRepository = (*AuthorRepository)(nil)
