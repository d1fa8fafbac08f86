// Package getallbooks provides the query for all books, in the order the repository returns them.
package getallbooks
