package deleteauthor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/memoryengine"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/deleteauthor"
	"github.com/AntonStoeckl/authors-books-cqrs-go/testutil/fixtures"
	"github.com/AntonStoeckl/authors-books-cqrs-go/testutil/testdoubles"
)

func Test_Command_CommandType(t *testing.T) {
	assert.Equal(t, "DeleteAuthor", deleteauthor.BuildCommand(fixtures.JohnDoeID).CommandType())
}

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	author := fixtures.JohnDoe()
	repo := testdoubles.NewAuthorRepositorySpy().WithGetByIDResult(author)
	handler := deleteauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), deleteauthor.BuildCommand(fixtures.JohnDoeID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, []catalog.AuthorID{fixtures.JohnDoeID}, repo.GetByIDCalls())
	require.Len(t, repo.DeleteCalls(), 1)
	assert.Same(t, author, repo.DeleteCalls()[0], "should delete the loaded instance")
	assert.Equal(t, 1, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_AuthorNotFound(t *testing.T) {
	// arrange
	repo := testdoubles.NewAuthorRepositorySpy().WithGetByIDResult(fixtures.JohnDoe())
	handler := deleteauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), deleteauthor.BuildCommand(fixtures.MissingAuthorID))

	// assert
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_ReadFailsIsReturnedUnchanged(t *testing.T) {
	// arrange
	readErr := errors.New("connection reset")
	repo := testdoubles.NewAuthorRepositorySpy().WithError(testdoubles.OperationGetByID, readErr)
	handler := deleteauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), deleteauthor.BuildCommand(fixtures.JohnDoeID))

	// assert
	assert.Same(t, readErr, err)
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_DeleteFailsIsReturnedUnchanged(t *testing.T) {
	// arrange
	deleteErr := errors.New("foreign key violation")
	repo := testdoubles.NewAuthorRepositorySpy().
		WithGetByIDResult(fixtures.JohnDoe()).
		WithError(testdoubles.OperationDelete, deleteErr)
	handler := deleteauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), deleteauthor.BuildCommand(fixtures.JohnDoeID))

	// assert
	assert.Same(t, deleteErr, err)
	assert.Equal(t, 1, repo.CallCount(testdoubles.OperationDelete), "should not retry")
}

func Test_CommandHandler_Handle_Error_CanceledBeforeRead(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := testdoubles.NewAuthorRepositorySpy().WithGetByIDResult(fixtures.JohnDoe())
	handler := deleteauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(ctx, deleteauthor.BuildCommand(fixtures.JohnDoeID))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.GetByIDCalls())
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_CanceledDuringRead(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := testdoubles.NewAuthorRepositorySpy().
		WithGetByIDResult(fixtures.JohnDoe()).
		WithOnGetByID(func(context.Context) { cancel() })
	handler := deleteauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(ctx, deleteauthor.BuildCommand(fixtures.JohnDoeID))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, repo.GetByIDCalls(), 1)
	assert.Zero(t, repo.WriteCount(), "should not write after cancellation")
}

func Test_CommandHandler_Handle_WithMemoryEngine(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, err := memoryengine.NewAuthorRepository()
	require.NoError(t, err)

	author := catalog.BuildAuthor("John Doe")
	require.NoError(t, repo.Add(ctx, &author))
	handler := deleteauthor.NewCommandHandler(repo)

	// act
	err = handler.Handle(ctx, deleteauthor.BuildCommand(author.AuthorID))
	secondErr := handler.Handle(ctx, deleteauthor.BuildCommand(author.AuthorID))

	// assert
	require.NoError(t, err)
	assert.ErrorIs(t, secondErr, catalog.ErrAuthorNotFound)

	found, err := repo.GetByID(ctx, author.AuthorID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func Test_CommandHandler_Handle_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		storedID := rapid.Int64Range(1, 1_000_000).Draw(rt, "storedID")
		requestedID := rapid.Int64Range(1, 1_000_000).Draw(rt, "requestedID")

		author := &catalog.Author{AuthorID: storedID, Name: "Some Author"}
		repo := testdoubles.NewAuthorRepositorySpy().WithGetByIDResult(author)
		handler := deleteauthor.NewCommandHandler(repo)

		err := handler.Handle(context.Background(), deleteauthor.BuildCommand(requestedID))

		if requestedID == storedID {
			assert.NoError(rt, err)
			assert.Equal(rt, 1, repo.CallCount(testdoubles.OperationDelete))
			assert.Same(rt, author, repo.DeleteCalls()[0])

			return
		}

		assert.ErrorIs(rt, err, catalog.ErrNotFound)
		assert.Zero(rt, repo.WriteCount())
	})
}
