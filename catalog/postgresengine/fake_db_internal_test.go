package postgresengine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/postgresengine/internal/adapters"
)

// fakeResponse is what the fakeDB answers to one Query or Exec call.
type fakeResponse struct {
	rows         [][]any
	rowsAffected int64
	err          error
}

// fakeDB is a scripted adapters.DBAdapter that records every statement it receives.
type fakeDB struct {
	mu        sync.Mutex
	responses []fakeResponse
	queries   []string
	execs     []string
}

func newFakeDB(responses ...fakeResponse) *fakeDB {
	return &fakeDB{responses: responses}
}

func (db *fakeDB) next() fakeResponse {
	if len(db.responses) == 0 {
		return fakeResponse{}
	}

	response := db.responses[0]
	db.responses = db.responses[1:]

	return response
}

func (db *fakeDB) Query(_ context.Context, query string) (adapters.DBRows, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.queries = append(db.queries, query)
	response := db.next()

	if response.err != nil {
		return nil, response.err
	}

	return &fakeRows{values: response.rows, index: -1}, nil
}

func (db *fakeDB) Exec(_ context.Context, query string) (adapters.DBResult, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.execs = append(db.execs, query)
	response := db.next()

	if response.err != nil {
		return nil, response.err
	}

	return fakeResult(response.rowsAffected), nil
}

func (db *fakeDB) statementCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()

	return len(db.queries) + len(db.execs)
}

func (db *fakeDB) lastQuery() string {
	db.mu.Lock()
	defer db.mu.Unlock()

	if len(db.queries) == 0 {
		return ""
	}

	return db.queries[len(db.queries)-1]
}

func (db *fakeDB) lastExec() string {
	db.mu.Lock()
	defer db.mu.Unlock()

	if len(db.execs) == 0 {
		return ""
	}

	return db.execs[len(db.execs)-1]
}

type fakeRows struct {
	values [][]any
	index  int
	closed bool
}

func (r *fakeRows) Next() bool {
	r.index++
	return r.index < len(r.values)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.values[r.index]
	if len(row) != len(dest) {
		return fmt.Errorf("expected %d destinations, got %d", len(row), len(dest))
	}

	for i, value := range row {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := value.(int64)
			if !ok {
				return errors.New("cannot scan into *int64")
			}
			*d = v

		case *string:
			v, ok := value.(string)
			if !ok {
				return errors.New("cannot scan into *string")
			}
			*d = v

		default:
			return fmt.Errorf("unsupported destination %T", dest[i])
		}
	}

	return nil
}

func (r *fakeRows) Err() error {
	return nil
}

func (r *fakeRows) Close() error {
	r.closed = true
	return nil
}

type fakeResult int64

func (r fakeResult) RowsAffected() (int64, error) {
	return int64(r), nil
}
