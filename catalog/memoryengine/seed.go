package memoryengine

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

var errNegativeID = errors.New("negative id")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// seedTable decodes a JSON array of rows from the reader into the table and returns how many rows it stored.
func seedTable[T any](
	reader io.Reader,
	tbl *table[T],
	idOf func(row T) int64,
	assign func(row *T, id int64),
) (int, error) {

	var rows []T

	if err := json.NewDecoder(reader).Decode(&rows); err != nil {
		return 0, errors.Join(catalog.ErrSeedingFailed, err)
	}

	for _, row := range rows {
		id := idOf(row)

		switch {
		case id < 0:
			return 0, errors.Join(catalog.ErrSeedingFailed, fmt.Errorf("%w: %d", errNegativeID, id))

		case id == 0:
			tbl.insert(row, assign)

		default:
			if err := tbl.insertWithID(id, row); err != nil {
				return 0, errors.Join(catalog.ErrSeedingFailed, err)
			}
		}
	}

	return len(rows), nil
}
