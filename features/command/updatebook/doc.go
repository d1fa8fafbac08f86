// Package updatebook implements the "Update Book" use case following Vertical Feature Slice architecture.
//
// Core (apply.go): Apply() overwrites title and subtitle of a book with the command values
// Shell (command_handler.go, command.go): loading and persisting through the repository
//
// The CommandHandler loads the book by id, applies the command to exactly that instance and passes
// it to Update. An empty SubTitle in the command removes the subtitle of the book.
// A missing book is reported as an error matching catalog.ErrBookNotFound.
package updatebook
