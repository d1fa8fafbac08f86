// Package getbook provides the query for a single book by id.
//
// A book that does not exist is not an error, the QueryHandler returns a nil *BookDetails.
package getbook
