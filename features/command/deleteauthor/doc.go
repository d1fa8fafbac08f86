// Package deleteauthor implements the "Delete Author" use case following Vertical Feature Slice architecture.
//
// The CommandHandler loads the author by id and deletes exactly that instance through the repository.
// A missing author is reported as an error matching catalog.ErrAuthorNotFound, in which case the
// repository is not written to.
//
// All observability concerns are handled by the external observable wrapper.
package deleteauthor
