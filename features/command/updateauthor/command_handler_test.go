package updateauthor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog/memoryengine"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/updateauthor"
	"github.com/AntonStoeckl/authors-books-cqrs-go/testutil/fixtures"
	"github.com/AntonStoeckl/authors-books-cqrs-go/testutil/testdoubles"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	author := fixtures.JohnDoe()
	repo := testdoubles.NewAuthorRepositorySpy().WithGetByIDResult(author)
	handler := updateauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), updateauthor.BuildCommand(fixtures.JohnDoeID, "Johnny Doe"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", author.Name, "should mutate the loaded instance")
	assert.Equal(t, fixtures.JohnDoeID, author.AuthorID)
	require.Len(t, repo.UpdateCalls(), 1)
	assert.Same(t, author, repo.UpdateCalls()[0])
	assert.Equal(t, 1, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_AuthorNotFound(t *testing.T) {
	// arrange
	repo := testdoubles.NewAuthorRepositorySpy()
	handler := updateauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), updateauthor.BuildCommand(fixtures.MissingAuthorID, "Nobody"))

	// assert
	assert.ErrorIs(t, err, catalog.ErrAuthorNotFound)
	assert.True(t, catalog.IsNotFound(err))
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_UpdateFailsIsReturnedUnchanged(t *testing.T) {
	// arrange
	updateErr := errors.New("serialization failure")
	repo := testdoubles.NewAuthorRepositorySpy().
		WithGetByIDResult(fixtures.JohnDoe()).
		WithError(testdoubles.OperationUpdate, updateErr)
	handler := updateauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), updateauthor.BuildCommand(fixtures.JohnDoeID, "Johnny Doe"))

	// assert
	assert.Same(t, updateErr, err)
	assert.Equal(t, 1, repo.CallCount(testdoubles.OperationUpdate), "should not retry")
}

func Test_CommandHandler_Handle_Error_ReadFailsIsReturnedUnchanged(t *testing.T) {
	// arrange
	readErr := errors.New("connection reset")
	repo := testdoubles.NewAuthorRepositorySpy().WithError(testdoubles.OperationGetByID, readErr)
	handler := updateauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(context.Background(), updateauthor.BuildCommand(fixtures.JohnDoeID, "Johnny Doe"))

	// assert
	assert.Same(t, readErr, err)
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_CanceledDuringRead(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	author := fixtures.JohnDoe()
	repo := testdoubles.NewAuthorRepositorySpy().
		WithGetByIDResult(author).
		WithOnGetByID(func(context.Context) { cancel() })
	handler := updateauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(ctx, updateauthor.BuildCommand(fixtures.JohnDoeID, "Johnny Doe"))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "John Doe", author.Name, "should not mutate after cancellation")
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_Error_TimedOutContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()

	repo := testdoubles.NewAuthorRepositorySpy().WithGetByIDResult(fixtures.JohnDoe())
	handler := updateauthor.NewCommandHandler(repo)

	// act
	err := handler.Handle(ctx, updateauthor.BuildCommand(fixtures.JohnDoeID, "Johnny Doe"))

	// assert
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, repo.WriteCount())
}

func Test_CommandHandler_Handle_WithMemoryEngine(t *testing.T) {
	// arrange
	ctx := context.Background()
	repo, err := memoryengine.NewAuthorRepository()
	require.NoError(t, err)

	author := catalog.BuildAuthor("John Doe")
	require.NoError(t, repo.Add(ctx, &author))
	handler := updateauthor.NewCommandHandler(repo)

	// act
	err = handler.Handle(ctx, updateauthor.BuildCommand(author.AuthorID, "Johnny Doe"))

	// assert
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, author.AuthorID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Johnny Doe", stored.Name)
}

func Test_Apply_KeepsIdentity(t *testing.T) {
	// arrange
	author := fixtures.JaneRoe()

	// act
	updateauthor.Apply(author, updateauthor.BuildCommand(fixtures.JohnDoeID, "Jane Doe"))

	// assert
	assert.Equal(t, catalog.Author{AuthorID: fixtures.JaneRoeID, Name: "Jane Doe"}, *author)
}

func Test_CommandHandler_Handle_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		authorID := rapid.Int64Range(1, 1_000_000).Draw(rt, "authorID")
		oldName := rapid.String().Draw(rt, "oldName")
		newName := rapid.String().Draw(rt, "newName")

		author := &catalog.Author{AuthorID: authorID, Name: oldName}
		repo := testdoubles.NewAuthorRepositorySpy().WithGetByIDResult(author)
		handler := updateauthor.NewCommandHandler(repo)

		err := handler.Handle(context.Background(), updateauthor.BuildCommand(authorID, newName))

		require.NoError(rt, err)
		assert.Equal(rt, newName, author.Name)
		assert.Equal(rt, authorID, author.AuthorID)
		assert.Equal(rt, 1, repo.CallCount(testdoubles.OperationUpdate))
	})
}
