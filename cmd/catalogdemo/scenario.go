package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/deleteauthor"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/deletebook"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/updateauthor"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/updatebook"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/query/getallauthors"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/query/getallbooks"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/query/getauthor"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/query/getbook"
)

const missingIDOffset = 1000

// stepResult is one line of the scenario report.
type stepResult struct {
	Step     string `json:"step"`
	Input    any    `json:"input,omitempty"`
	Result   any    `json:"result,omitempty"`
	NotFound bool   `json:"not_found,omitempty"`
}

// scenario runs a fixed sequence of queries and commands, each with its own timeout.
// Not found outcomes are part of the report, any other error aborts the run.
type scenario struct {
	handlers *HandlerBundle
	timeout  time.Duration
	steps    []stepResult
}

func runScenario(ctx context.Context, handlers *HandlerBundle, timeout time.Duration) ([]stepResult, error) {
	s := &scenario{handlers: handlers, timeout: timeout}

	authors, err := s.listAuthors(ctx)
	if err != nil {
		return s.steps, err
	}

	books, err := s.listBooks(ctx)
	if err != nil {
		return s.steps, err
	}

	if len(authors.Authors) > 0 {
		first := authors.Authors[0].AuthorID
		last := authors.Authors[len(authors.Authors)-1].AuthorID

		if err = s.getAuthor(ctx, first); err != nil {
			return s.steps, err
		}

		if err = s.getAuthor(ctx, last+missingIDOffset); err != nil {
			return s.steps, err
		}

		if err = s.updateAuthor(ctx, first, "John Q. Doe"); err != nil {
			return s.steps, err
		}

		if err = s.deleteAuthor(ctx, last); err != nil {
			return s.steps, err
		}

		if err = s.deleteAuthor(ctx, last); err != nil {
			return s.steps, err
		}
	}

	if len(books.Books) > 0 {
		first := books.Books[0].BookID
		last := books.Books[len(books.Books)-1].BookID

		if err = s.updateBook(ctx, first, "New Title", "New Subtitle"); err != nil {
			return s.steps, err
		}

		if err = s.getBook(ctx, first); err != nil {
			return s.steps, err
		}

		if err = s.deleteBook(ctx, last); err != nil {
			return s.steps, err
		}

		if err = s.updateBook(ctx, last, "Gone", ""); err != nil {
			return s.steps, err
		}
	}

	if _, err = s.listAuthors(ctx); err != nil {
		return s.steps, err
	}

	if _, err = s.listBooks(ctx); err != nil {
		return s.steps, err
	}

	return s.steps, nil
}

func (s *scenario) listAuthors(ctx context.Context) (getallauthors.AuthorList, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.handlers.getAllAuthors.Handle(ctx, getallauthors.BuildQuery())
	if err != nil {
		return getallauthors.AuthorList{}, err
	}

	s.steps = append(s.steps, stepResult{Step: "GetAllAuthors", Result: result})

	return result, nil
}

func (s *scenario) listBooks(ctx context.Context) (getallbooks.BookList, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.handlers.getAllBooks.Handle(ctx, getallbooks.BuildQuery())
	if err != nil {
		return getallbooks.BookList{}, err
	}

	s.steps = append(s.steps, stepResult{Step: "GetAllBooks", Result: result})

	return result, nil
}

func (s *scenario) getAuthor(ctx context.Context, authorID catalog.AuthorID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := getauthor.BuildQuery(authorID)

	result, err := s.handlers.getAuthor.Handle(ctx, query)
	if err != nil {
		return err
	}

	step := stepResult{Step: query.QueryType(), Input: query, NotFound: result.IsAbsent()}
	if !result.IsAbsent() {
		step.Result = result
	}

	s.steps = append(s.steps, step)

	return nil
}

func (s *scenario) getBook(ctx context.Context, bookID catalog.BookID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := getbook.BuildQuery(bookID)

	result, err := s.handlers.getBook.Handle(ctx, query)
	if err != nil {
		return err
	}

	step := stepResult{Step: query.QueryType(), Input: query, NotFound: result.IsAbsent()}
	if !result.IsAbsent() {
		step.Result = result
	}

	s.steps = append(s.steps, step)

	return nil
}

func (s *scenario) updateAuthor(ctx context.Context, authorID catalog.AuthorID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	command := updateauthor.BuildCommand(authorID, name)

	return s.recordCommand(command.CommandType(), command, s.handlers.updateAuthor.Handle(ctx, command))
}

func (s *scenario) updateBook(ctx context.Context, bookID catalog.BookID, title, subTitle string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	command := updatebook.BuildCommand(bookID, title, subTitle)

	return s.recordCommand(command.CommandType(), command, s.handlers.updateBook.Handle(ctx, command))
}

func (s *scenario) deleteAuthor(ctx context.Context, authorID catalog.AuthorID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	command := deleteauthor.BuildCommand(authorID)

	return s.recordCommand(command.CommandType(), command, s.handlers.deleteAuthor.Handle(ctx, command))
}

func (s *scenario) deleteBook(ctx context.Context, bookID catalog.BookID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	command := deletebook.BuildCommand(bookID)

	return s.recordCommand(command.CommandType(), command, s.handlers.deleteBook.Handle(ctx, command))
}

func (s *scenario) recordCommand(step string, command any, err error) error {
	switch {
	case err == nil:
		s.steps = append(s.steps, stepResult{Step: step, Input: command})
		return nil
	case errors.Is(err, catalog.ErrNotFound):
		s.steps = append(s.steps, stepResult{Step: step, Input: command, NotFound: true})
		return nil
	default:
		return err
	}
}

func writeReport(w io.Writer, steps []stepResult) error {
	report, err := json.MarshalIndent(steps, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(report, '\n'))

	return err
}
