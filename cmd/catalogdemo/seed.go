package main

import (
	"context"
	_ "embed"
	"errors"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
)

//go:embed seed.json
var defaultSeed []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// seedDocument is the format of a seed file, each list is a JSON array as understood by memoryengine.WithSeedJSON.
type seedDocument struct {
	Authors jsoniter.RawMessage `json:"authors"`
	Books   jsoniter.RawMessage `json:"books"`
}

// loadSeed reads the seed file, or the embedded default seed if no file is configured.
func loadSeed(seedFile string) (seedDocument, error) {
	raw := defaultSeed

	if seedFile != "" {
		content, err := os.ReadFile(seedFile)
		if err != nil {
			return seedDocument{}, errors.Join(catalog.ErrSeedingFailed, err)
		}

		raw = content
	}

	var doc seedDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return seedDocument{}, errors.Join(catalog.ErrSeedingFailed, err)
	}

	if len(doc.Authors) == 0 {
		doc.Authors = jsoniter.RawMessage("[]")
	}

	if len(doc.Books) == 0 {
		doc.Books = jsoniter.RawMessage("[]")
	}

	return doc, nil
}

// seedThroughRepositories adds all seed entities with Add, the repositories assign new identifiers.
func seedThroughRepositories(
	ctx context.Context,
	doc seedDocument,
	authors catalog.AuthorRepository,
	books catalog.BookRepository,
) error {

	var seedAuthors catalog.Authors
	if err := json.Unmarshal(doc.Authors, &seedAuthors); err != nil {
		return errors.Join(catalog.ErrSeedingFailed, err)
	}

	var seedBooks catalog.Books
	if err := json.Unmarshal(doc.Books, &seedBooks); err != nil {
		return errors.Join(catalog.ErrSeedingFailed, err)
	}

	for _, seedAuthor := range seedAuthors {
		author := catalog.BuildAuthor(seedAuthor.Name)
		if err := authors.Add(ctx, &author); err != nil {
			return errors.Join(catalog.ErrSeedingFailed, err)
		}
	}

	for _, seedBook := range seedBooks {
		book := catalog.BuildBook(seedBook.Title, seedBook.SubTitle)
		if err := books.Add(ctx, &book); err != nil {
			return errors.Join(catalog.ErrSeedingFailed, err)
		}
	}

	return nil
}
