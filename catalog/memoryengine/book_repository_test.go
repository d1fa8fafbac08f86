package memoryengine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/memoryengine"
)

func Test_BookRepository_AddGetUpdateDelete(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo := newBookRepository(t)
	book := catalog.BuildBook("Existing Title", "Existing Subtitle")

	// act + assert
	require.NoError(t, repo.Add(ctx, &book))
	assert.Equal(t, catalog.BookID(1), book.BookID)

	found, err := repo.GetByID(ctx, book.BookID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, book, *found)

	found.Title = "New Title"
	found.SubTitle = ""
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.GetByID(ctx, book.BookID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.False(t, updated.HasSubTitle())

	require.NoError(t, repo.Delete(ctx, updated))

	gone, err := repo.GetByID(ctx, book.BookID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Equal(t, 0, repo.Count())
}

func Test_BookRepository_UnknownIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newBookRepository(t)
	ghost := catalog.Book{BookID: 21, Title: "Ghost"}

	assert.ErrorIs(t, repo.Update(ctx, &ghost), catalog.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, &ghost), catalog.ErrBookNotFound)
}

func Test_BookRepository_Seed(t *testing.T) {
	seed := `[{"book_id": 21, "title": "Existing Title", "sub_title": "Existing Subtitle"}, {"title": "Book title"}]`

	repo, err := memoryengine.NewBookRepository(memoryengine.WithSeedJSON(strings.NewReader(seed)))
	require.NoError(t, err)

	books, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, catalog.Book{BookID: 21, Title: "Existing Title", SubTitle: "Existing Subtitle"}, books[0])
	assert.Equal(t, catalog.Book{BookID: 22, Title: "Book title"}, books[1])
}

func Test_BookRepository_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		repo, err := memoryengine.NewBookRepository()
		if err != nil {
			rt.Fatalf("creating repository: %v", err)
		}

		titles := rapid.SliceOf(rapid.StringMatching(`[A-Za-z ]{1,20}`)).Draw(rt, "titles")
		added := make(catalog.Books, 0, len(titles))

		for _, title := range titles {
			book := catalog.BuildBook(title, "")
			if addErr := repo.Add(ctx, &book); addErr != nil {
				rt.Fatalf("adding book: %v", addErr)
			}
			added = append(added, book)
		}

		all, err := repo.GetAll(ctx)
		if err != nil {
			rt.Fatalf("getting all books: %v", err)
		}

		// GetAll mirrors the insertion sequence
		if len(all) != len(added) {
			rt.Fatalf("expected %d books, got %d", len(added), len(all))
		}
		for i := range added {
			if all[i] != added[i] {
				rt.Fatalf("book %d differs: %+v != %+v", i, all[i], added[i])
			}
		}

		// an id that was never assigned is absent
		unknownID := rapid.Int64Range(int64(len(added))+1, 1<<40).Draw(rt, "unknownID")
		absent, err := repo.GetByID(ctx, unknownID)
		if err != nil || absent != nil {
			rt.Fatalf("expected absent book for id %d, got %+v, %v", unknownID, absent, err)
		}
	})
}

func newBookRepository(t *testing.T) *memoryengine.BookRepository {
	t.Helper()

	repo, err := memoryengine.NewBookRepository()
	require.NoError(t, err)

	return repo
}
