package memoryengine

import (
	"errors"
	"io"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

var ErrNilSeedReader = errors.New("seed reader must not be nil")

type options struct {
	logger     catalog.Logger
	seedReader io.Reader
}

// Option defines a functional option for configuring a memory repository.
type Option func(*options) error

// WithLogger sets the logger for the repository.
//
// Debug level: every repository operation with the affected id
// Info level: seeding results.
func WithLogger(logger catalog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithSeedJSON pre-populates the repository from a JSON array of entities, keeping their identifiers.
// Entities without an identifier get the next free one.
func WithSeedJSON(reader io.Reader) Option {
	return func(o *options) error {
		if reader == nil {
			return ErrNilSeedReader
		}

		o.seedReader = reader

		return nil
	}
}

func applyOptions(opts []Option) (options, error) {
	o := options{}

	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}

	return o, nil
}
