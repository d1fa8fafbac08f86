// Package deletebook implements the "Delete Book" use case following Vertical Feature Slice architecture.
//
// The CommandHandler loads the book by id and deletes exactly that instance through the repository.
// A missing book is reported as an error matching catalog.ErrBookNotFound, in which case the
// repository is not written to.
//
// All observability concerns are handled by the external observable wrapper.
package deletebook
