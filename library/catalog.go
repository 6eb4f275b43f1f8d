package library

import "strings"

// ---------------------------------------------------------------------------
// Catalog operations
// ---------------------------------------------------------------------------

// AddBook appends book to the caller-owned sequence. Duplicate titles are allowed.
func AddBook(books *[]*Book, book *Book) {
	*books = append(*books, book)
}

// FindBook returns the first book whose title matches title ignoring case,
// or nil when there is none.
func FindBook(books []*Book, title string) *Book {
	want := strings.ToLower(title)
	for _, b := range books {
		if strings.ToLower(b.Title) == want {
			return b
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Circulation
// ---------------------------------------------------------------------------

// BorrowBook marks book as borrowed. A book that is already out is left
// untouched and a *NotAvailableError is returned.
func BorrowBook(book *Book) (bool, error) {
	if !book.Available {
		return false, &NotAvailableError{Title: book.Title}
	}
	book.Available = false
	return true, nil
}

// ReturnBook marks book as available again. Returning an available book is a no-op.
func ReturnBook(book *Book) {
	book.Available = true
}
