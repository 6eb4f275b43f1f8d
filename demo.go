package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"library-catalog/library"
)

// runDemo builds a small library and walks one book through borrow and return.
func runDemo(out io.Writer, log zerolog.Logger) error {
	lib := library.NewLibrary()

	book1, err := library.NewBook("1984", "George Orwell", 1949, true, "dystopia", "classic")
	if err != nil {
		return err
	}
	book2, err := library.NewBook("War and Peace", "Leo Tolstoy", 1869, false, "novel", "history")
	if err != nil {
		return err
	}
	library.AddBook(&lib.Books, book1)
	library.AddBook(&lib.Books, book2)

	lib.AddUser(library.NewUser("Gleb Gorbunov", "gleb@example.com", "U001"))
	log.Debug().Int("books", lib.TotalBooks()).Int("users", len(lib.Users)).Msg("demo library ready")

	found := library.FindBook(lib.Books, "1984")
	if found == nil {
		fmt.Fprintln(out, "Found book: not found")
		return nil
	}
	fmt.Fprintf(out, "Found book: %s\n", found.Title)

	for _, b := range []*library.Book{found, book2} {
		if _, err := library.BorrowBook(b); err != nil {
			if !errors.Is(err, library.ErrBookNotAvailable) {
				return err
			}
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Book '%s' borrowed.\n", b.Title)
	}

	library.ReturnBook(found)
	fmt.Fprintf(out, "Book '%s' returned.\n", found.Title)

	fmt.Fprintf(out, "Total books in library: %d\n", lib.TotalBooks())
	return nil
}
