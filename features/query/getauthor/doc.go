// Package getauthor provides the query for a single author by id.
//
// An author that does not exist is not an error: the QueryHandler returns a nil *AuthorDetails,
// which reports IsAbsent() == true.
package getauthor
