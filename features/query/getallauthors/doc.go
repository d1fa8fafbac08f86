// Package getallauthors provides the query for all authors.
//
// The result lists the authors in the order the repository returns them, which is insertion order.
// An empty catalog yields an empty list, never an absent result.
package getallauthors
