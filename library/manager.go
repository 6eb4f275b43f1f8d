package library

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LibraryManager is a thin façade over a Library, keeping CLI code simple.
type LibraryManager struct {
	lib *Library
	log zerolog.Logger
}

// NewLibraryManager starts a session over an empty library.
func NewLibraryManager(log zerolog.Logger) *LibraryManager {
	return &LibraryManager{lib: NewLibrary(), log: log}
}

// ------------------ Book helpers ------------------

// AddBook constructs a book and appends it to the catalog.
func (lm *LibraryManager) AddBook(title, author string, year int, available bool, categories ...string) (*Book, error) {
	b, err := NewBook(title, author, year, available, categories...)
	if err != nil {
		return nil, err
	}
	lm.lib.AddBook(b)
	lm.log.Debug().Str("title", title).Int("total", lm.lib.TotalBooks()).Msg("book added")
	return b, nil
}

func (lm *LibraryManager) FindBook(title string) *Book { return FindBook(lm.lib.Books, title) }
func (lm *LibraryManager) Books() []*Book              { return lm.lib.Books }
func (lm *LibraryManager) TotalBooks() int             { return lm.lib.TotalBooks() }

// ------------------ User helpers ------------------

// AddUser registers a user. A blank membership id is replaced by a generated one.
func (lm *LibraryManager) AddUser(name, email, membershipID string) *User {
	if membershipID == "" {
		membershipID = uuid.NewString()
	}
	u := NewUser(name, email, membershipID)
	lm.lib.AddUser(u)
	lm.log.Debug().Str("membership_id", membershipID).Msg("user added")
	return u
}

func (lm *LibraryManager) Users() []*User { return lm.lib.Users }

// ------------------ Circulation ------------------

// BorrowBook looks the book up by title and borrows it.
func (lm *LibraryManager) BorrowBook(title string) (*Book, error) {
	b := lm.FindBook(title)
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrBookNotFound, title)
	}
	if _, err := BorrowBook(b); err != nil {
		lm.log.Debug().Str("title", b.Title).Msg("borrow refused")
		return b, err
	}
	lm.log.Debug().Str("title", b.Title).Msg("book borrowed")
	return b, nil
}

// ReturnBook looks the book up by title and returns it.
func (lm *LibraryManager) ReturnBook(title string) (*Book, error) {
	b := lm.FindBook(title)
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrBookNotFound, title)
	}
	ReturnBook(b)
	lm.log.Debug().Str("title", b.Title).Msg("book returned")
	return b, nil
}

// ------------------ Import / export ------------------

type bookRecord struct {
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Year       int      `json:"year"`
	Available  bool     `json:"available"`
	Categories []string `json:"categories"`
}

// ImportBooks reads a JSON array of books from r and adds them in order.
// The first invalid record stops the import; records before it stay added.
func (lm *LibraryManager) ImportBooks(r io.Reader) (int, error) {
	var records []bookRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return 0, fmt.Errorf("decode books: %w", err)
	}
	for i, rec := range records {
		if _, err := lm.AddBook(rec.Title, rec.Author, rec.Year, rec.Available, rec.Categories...); err != nil {
			return i, fmt.Errorf("book %d (%q): %w", i+1, rec.Title, err)
		}
	}
	lm.log.Info().Int("count", len(records)).Msg("books imported")
	return len(records), nil
}

// ExportBooks writes the catalog to w as indented JSON.
func (lm *LibraryManager) ExportBooks(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lm.lib.Books)
}

// ------------------ Utilities ------------------

// PrettyBook formats a book for lists.
func PrettyBook(b *Book) string {
	return fmt.Sprintf("%-30s %-25s %-6d %-10t", Truncate(b.Title, 30), Truncate(b.Author, 25), b.Year, b.Available)
}

// Truncate shortens s to at most maxLen characters, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	if maxLen <= 3 {
		return string(r[:max(maxLen, 0)])
	}
	return string(r[:maxLen-3]) + "..."
}
