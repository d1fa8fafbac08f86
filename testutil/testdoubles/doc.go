// Package testdoubles provides spies for the catalog repository interfaces.
//
// AuthorRepositorySpy and BookRepositorySpy record every call together with the entity pointer
// they received and return programmed results:
//
//	author := &catalog.Author{AuthorID: 42, Name: "John Doe"}
//	repo := testdoubles.NewAuthorRepositorySpy().
//		WithGetByIDResult(author).
//		WithError(testdoubles.OperationUpdate, errDatabaseDown)
//
// GetByID returns the programmed entity whose id matches, or nil. GetAll returns the programmed
// slice, or an empty one. A hook registered with WithOnGetByID runs inside GetByID, which lets
// tests cancel a context between the read and the write of a handler.
package testdoubles
