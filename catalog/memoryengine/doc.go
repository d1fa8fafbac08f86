// Package memoryengine provides single-process, in-memory implementations of the
// catalog.AuthorRepository and catalog.BookRepository contracts.
//
// Identifiers are assigned from a counter starting at 1, GetAll returns entities in insertion order,
// and all access is serialized with a sync.RWMutex. Entities are copied on the way in and out,
// so callers can freely mutate what they got from GetByID before passing it to Update.
//
// Repositories can be pre-populated from a JSON array with WithSeedJSON, for example:
//
//	[{"author_id": 1, "name": "John Doe"}, {"author_id": 2, "name": "Jane Smith"}]
package memoryengine
