package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"library-catalog/library"
)

// checkseed validates a JSON seed file record by record and prints what
// would be loaded. It exits non-zero when any record is rejected.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: checkseed BOOKS.json")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading seed file: %v\n", err)
		os.Exit(1)
	}

	errorCount, err := check(os.Stdout, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding seed file: %v\n", err)
		os.Exit(1)
	}
	if errorCount > 0 {
		os.Exit(1)
	}
}

// check reports every record in data and returns how many were rejected.
func check(out io.Writer, data []byte) (int, error) {
	var records []library.Book
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, err
	}

	lib := library.NewLibrary()
	errorCount := 0

	for i, rec := range records {
		fmt.Fprintf(out, "Checking %d: %s by %s... ", i+1, rec.Title, rec.Author)

		book, err := library.NewBook(rec.Title, rec.Author, rec.Year, rec.Available, rec.Categories...)
		if err != nil {
			fmt.Fprintf(out, "ERROR - %v\n", err)
			errorCount++
			continue
		}
		if dup := library.FindBook(lib.Books, book.Title); dup != nil {
			fmt.Fprintf(out, "OK (duplicate title of %q)\n", dup.Title)
		} else {
			fmt.Fprintln(out, "OK")
		}
		library.AddBook(&lib.Books, book)
	}

	fmt.Fprintf(out, "\nCheck complete!\n")
	fmt.Fprintf(out, "Valid: %d books\n", lib.TotalBooks())
	fmt.Fprintf(out, "Errors: %d\n", errorCount)

	if lib.TotalBooks() > 0 {
		fmt.Fprintln(out, "\nBooks:")
		fmt.Fprintf(out, "%-50s %-30s %s\n", "Title", "Author", "Categories")
		fmt.Fprintln(out, strings.Repeat("-", 100))
		for _, b := range lib.Books {
			fmt.Fprintf(out, "%-50s %-30s %s\n", library.Truncate(b.Title, 50), library.Truncate(b.Author, 30), strings.Join(b.Categories, ", "))
		}
	}
	return errorCount, nil
}
