package main

import (
	"fmt"

	"github.com/AntonStoeckl/authors-books-cqrs-go/catalog"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/deleteauthor"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/deletebook"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/updateauthor"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/command/updatebook"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/query/getallauthors"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/query/getallbooks"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/query/getauthor"
	"github.com/AntonStoeckl/authors-books-cqrs-go/features/query/getbook"
	"github.com/AntonStoeckl/authors-books-cqrs-go/shared/shell"
	"github.com/AntonStoeckl/authors-books-cqrs-go/shared/shell/observable"
)

// HandlerBundle contains all command and query handlers, each wrapped with observability.
type HandlerBundle struct {
	// Command handlers.
	deleteAuthor shell.CommandHandler[deleteauthor.Command]
	deleteBook   shell.CommandHandler[deletebook.Command]
	updateAuthor shell.CommandHandler[updateauthor.Command]
	updateBook   shell.CommandHandler[updatebook.Command]

	// Query handlers.
	getAuthor     shell.QueryHandler[getauthor.Query, *getauthor.AuthorDetails]
	getBook       shell.QueryHandler[getbook.Query, *getbook.BookDetails]
	getAllAuthors shell.QueryHandler[getallauthors.Query, getallauthors.AuthorList]
	getAllBooks   shell.QueryHandler[getallbooks.Query, getallbooks.BookList]
}

// NewHandlerBundle creates all handlers on top of the given repositories.
func NewHandlerBundle(
	authors catalog.AuthorRepository,
	books catalog.BookRepository,
	obsConfig ObservabilityConfig,
) (*HandlerBundle, error) {

	var (
		bundle HandlerBundle
		err    error
	)

	if bundle.deleteAuthor, err = wrapCommand[deleteauthor.Command](deleteauthor.NewCommandHandler(authors), obsConfig); err != nil {
		return nil, fmt.Errorf("failed to create DeleteAuthor handler: %w", err)
	}

	if bundle.deleteBook, err = wrapCommand[deletebook.Command](deletebook.NewCommandHandler(books), obsConfig); err != nil {
		return nil, fmt.Errorf("failed to create DeleteBook handler: %w", err)
	}

	if bundle.updateAuthor, err = wrapCommand[updateauthor.Command](updateauthor.NewCommandHandler(authors), obsConfig); err != nil {
		return nil, fmt.Errorf("failed to create UpdateAuthor handler: %w", err)
	}

	if bundle.updateBook, err = wrapCommand[updatebook.Command](updatebook.NewCommandHandler(books), obsConfig); err != nil {
		return nil, fmt.Errorf("failed to create UpdateBook handler: %w", err)
	}

	if bundle.getAuthor, err = wrapQuery[getauthor.Query, *getauthor.AuthorDetails](getauthor.NewQueryHandler(authors), obsConfig); err != nil {
		return nil, fmt.Errorf("failed to create GetAuthor handler: %w", err)
	}

	if bundle.getBook, err = wrapQuery[getbook.Query, *getbook.BookDetails](getbook.NewQueryHandler(books), obsConfig); err != nil {
		return nil, fmt.Errorf("failed to create GetBook handler: %w", err)
	}

	if bundle.getAllAuthors, err = wrapQuery[getallauthors.Query, getallauthors.AuthorList](getallauthors.NewQueryHandler(authors), obsConfig); err != nil {
		return nil, fmt.Errorf("failed to create GetAllAuthors handler: %w", err)
	}

	if bundle.getAllBooks, err = wrapQuery[getallbooks.Query, getallbooks.BookList](getallbooks.NewQueryHandler(books), obsConfig); err != nil {
		return nil, fmt.Errorf("failed to create GetAllBooks handler: %w", err)
	}

	return &bundle, nil
}

func wrapCommand[C shell.Command](
	handler shell.CommandHandler[C],
	obsConfig ObservabilityConfig,
) (shell.CommandHandler[C], error) {

	var opts []observable.CommandOption[C]

	if obsConfig.ContextualLogger != nil {
		opts = append(opts, observable.WithCommandContextualLogging[C](obsConfig.ContextualLogger))
	} else if obsConfig.Logger != nil {
		opts = append(opts, observable.WithCommandLogging[C](obsConfig.Logger))
	}

	if obsConfig.MetricsCollector != nil {
		opts = append(opts, observable.WithCommandMetrics[C](obsConfig.MetricsCollector))
	}

	if obsConfig.TracingCollector != nil {
		opts = append(opts, observable.WithCommandTracing[C](obsConfig.TracingCollector))
	}

	return observable.NewCommandWrapper(handler, opts...)
}

func wrapQuery[Q shell.Query, R shell.QueryResult](
	handler shell.QueryHandler[Q, R],
	obsConfig ObservabilityConfig,
) (shell.QueryHandler[Q, R], error) {

	var opts []observable.QueryOption[Q, R]

	if obsConfig.ContextualLogger != nil {
		opts = append(opts, observable.WithQueryContextualLogging[Q, R](obsConfig.ContextualLogger))
	} else if obsConfig.Logger != nil {
		opts = append(opts, observable.WithQueryLogging[Q, R](obsConfig.Logger))
	}

	if obsConfig.MetricsCollector != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](obsConfig.MetricsCollector))
	}

	if obsConfig.TracingCollector != nil {
		opts = append(opts, observable.WithQueryTracing[Q, R](obsConfig.TracingCollector))
	}

	return observable.NewQueryWrapper(handler, opts...)
}
