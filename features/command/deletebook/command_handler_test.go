package deletebook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/memoryengine"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/deletebook"
	"github.com/AntonStoeckl/authors-books-cqrs-go/testutil/fixtures"
	"github.com/AntonStoeckl/authors-books-cqrs-go/testutil/testdoubles"
)

func Test_Command_CommandType(t *testing.T) {
	assert.Equal(t, "DeleteBook", deletebook.BuildCommand(fixtures.ExistingBookID).CommandType())
}

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	book := fixtures.ExistingBook()
	repo := testdoubles.NewBookRepositorySpy().WithGetByIDResult(book)
	handler := deletebook.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), deletebook.BuildCommand(fixtures.ExistingBookID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, []catalog.BookID{fixtures.ExistingBookID}, repo.GetByIDCalls())
	require.Len(t, repo.DeleteCalls(), 1)
	assert.Same(t, book, repo.DeleteCalls()[0], "should delete the loaded instance")
	assert.Equal(t, 1, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_BookNotFound(t *testing.T) {
	// arrange
	repo := testdoubles.NewBookRepositorySpy().WithGetByIDResult(fixtures.ExistingBook())
	handler := deletebook.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), deletebook.BuildCommand(fixtures.MissingBookID))

	// assert
	assert.ErrorIs(t, err, catalog.ErrBookNotFound)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_ReadFailsIsReturnedUnchanged(t *testing.T) {
	// arrange
	readErr := errors.New("connection reset")
	repo := testdoubles.NewBookRepositorySpy().WithError(testdoubles.OperationGetByID, readErr)
	handler := deletebook.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), deletebook.BuildCommand(fixtures.ExistingBookID))

	// assert
	assert.Same(t, readErr, err)
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_DeleteFailsIsReturnedUnchanged(t *testing.T) {
	// arrange
	deleteErr := errors.New("foreign key violation")
	repo := testdoubles.NewBookRepositorySpy().
		WithGetByIDResult(fixtures.ExistingBook()).
		WithError(testdoubles.OperationDelete, deleteErr)
	handler := deletebook.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), deletebook.BuildCommand(fixtures.ExistingBookID))

	// assert
	assert.Same(t, deleteErr, err)
	assert.Equal(t, 1, repo.CallCount(testdoubles.OperationDelete), "should not retry")
}

func Test_CommandHandler_Handle_Error_CanceledBeforeRead(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := testdoubles.NewBookRepositorySpy().WithGetByIDResult(fixtures.ExistingBook())
	handler := deletebook.NewCommandHandler(repo)

	// act
	err := handler.Handle(ctx, deletebook.BuildCommand(fixtures.ExistingBookID))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.GetByIDCalls())
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_CanceledDuringRead(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := testdoubles.NewBookRepositorySpy().
		WithGetByIDResult(fixtures.ExistingBook()).
		WithOnGetByID(func(context.Context) { cancel() })
	handler := deletebook.NewCommandHandler(repo)

	// act
	err := handler.Handle(ctx, deletebook.BuildCommand(fixtures.ExistingBookID))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, repo.GetByIDCalls(), 1)
	assert.Zero(t, repo.WriteCount(), "should not write after cancellation")
}

func Test_CommandHandler_Handle_WithMemoryEngine(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, err := memoryengine.NewBookRepository()
	require.NoError(t, err)

	book := catalog.BuildBook("Existing Title", "")
	require.NoError(t, repo.Add(ctx, &book))
	handler := deletebook.NewCommandHandler(repo)

	// act
	err = handler.Handle(ctx, deletebook.BuildCommand(book.BookID))
	secondErr := handler.Handle(ctx, deletebook.BuildCommand(book.BookID))

	// assert
	require.NoError(t, err)
	assert.ErrorIs(t, secondErr, catalog.ErrBookNotFound)

	found, err := repo.GetByID(ctx, book.BookID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func Test_CommandHandler_Handle_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		storedID := rapid.Int64Range(1, 1_000_000).Draw(rt, "storedID")
		requestedID := rapid.Int64Range(1, 1_000_000).Draw(rt, "requestedID")

		book := &catalog.Book{BookID: storedID, Title: "Some Title"}
		repo := testdoubles.NewBookRepositorySpy().WithGetByIDResult(book)
		handler := deletebook.NewCommandHandler(repo)

		err := handler.Handle(context.Background(), deletebook.BuildCommand(requestedID))

		if requestedID == storedID {
			assert.NoError(rt, err)
			assert.Equal(rt, 1, repo.CallCount(testdoubles.OperationDelete))
			assert.Same(rt, book, repo.DeleteCalls()[0])

			return
		}

		assert.ErrorIs(rt, err, catalog.ErrNotFound)
		assert.Zero(rt, repo.WriteCount())
	})
}
