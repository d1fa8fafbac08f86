// Package updateauthor implements the "Update Author" use case following Vertical Feature Slice architecture.
//
// Core (apply.go): Apply() overwrites the mutable fields of an author with the command values
// Shell (command_handler.go, command.go): loading and persisting through the repository
//
// The CommandHandler loads the author by id, applies the command to exactly that instance and
// passes it to Update. A missing author is reported as an error matching catalog.ErrAuthorNotFound.
//
// Note: In a real application, BuildCommand() should validate the new name, e.g. reject blank names.
package updateauthor
