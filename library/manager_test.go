package library

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *LibraryManager {
	t.Helper()
	return NewLibraryManager(zerolog.Nop())
}

func TestManagerCirculation(t *testing.T) {
	mgr := newManager(t)
	_, err := mgr.AddBook("1984", "George Orwell", 1949, true, "dystopia")
	require.NoError(t, err)

	b, err := mgr.BorrowBook("1984")
	require.NoError(t, err)
	assert.False(t, b.Available)

	_, err = mgr.BorrowBook("1984")
	assert.ErrorIs(t, err, ErrBookNotAvailable)

	b, err = mgr.ReturnBook("1984")
	require.NoError(t, err)
	assert.True(t, b.Available)

	_, err = mgr.BorrowBook("Missing")
	assert.ErrorIs(t, err, ErrBookNotFound)
	_, err = mgr.ReturnBook("Missing")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestManagerAddBookValidation(t *testing.T) {
	mgr := newManager(t)
	_, err := mgr.AddBook("Bad", "Author", 2000, true, " ")
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, 0, mgr.TotalBooks())
}

func TestManagerAddUser(t *testing.T) {
	mgr := newManager(t)

	u := mgr.AddUser("Alice", "alice@example.com", "U001")
	assert.Equal(t, "U001", u.MembershipID)

	generated := mgr.AddUser("Bob", "bob@example.com", "")
	_, err := uuid.Parse(generated.MembershipID)
	assert.NoError(t, err)

	require.Len(t, mgr.Users(), 2)
	assert.Same(t, u, mgr.Users()[0])
}

func TestImportBooks(t *testing.T) {
	mgr := newManager(t)
	src := `[
		{"title": "1984", "author": "George Orwell", "year": 1949, "available": true, "categories": ["dystopia", "classic"]},
		{"title": "War and Peace", "author": "Leo Tolstoy", "year": 1869, "available": false}
	]`

	n, err := mgr.ImportBooks(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, mgr.TotalBooks())

	wp := mgr.FindBook("war and peace")
	require.NotNil(t, wp)
	assert.False(t, wp.Available)
	assert.Empty(t, wp.Categories)
}

func TestImportBooksStopsAtInvalidRecord(t *testing.T) {
	mgr := newManager(t)
	src := `[
		{"title": "Good", "author": "A", "year": 1, "available": true},
		{"title": "Bad", "author": "B", "year": 2, "available": true, "categories": [""]},
		{"title": "Never", "author": "C", "year": 3, "available": true}
	]`

	n, err := mgr.ImportBooks(strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "Bad")
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, mgr.TotalBooks())
}

func TestImportBooksMalformed(t *testing.T) {
	mgr := newManager(t)
	_, err := mgr.ImportBooks(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestExportBooks(t *testing.T) {
	mgr := newManager(t)
	_, err := mgr.AddBook("1984", "George Orwell", 1949, true, "dystopia")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mgr.ExportBooks(&buf))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "1984", out[0]["title"])
	assert.Equal(t, true, out[0]["available"])
}

func TestPrettyBookTruncatesLongTitles(t *testing.T) {
	b := &Book{Title: strings.Repeat("x", 40), Author: "A", Year: 2000, Available: true}
	row := PrettyBook(b)
	assert.Contains(t, row, strings.Repeat("x", 27)+"...")
	assert.NotContains(t, row, strings.Repeat("x", 28))
}

func TestPrettyBookCyrillic(t *testing.T) {
	b, err := NewBook("Война и мир. Том первый. Часть первая", "Преступление и наказание", 1869, true)
	require.NoError(t, err)

	row := PrettyBook(b)
	require.True(t, utf8.ValidString(row))

	runes := []rune(row)
	assert.Equal(t, "Война и мир. Том первый. Ча...", string(runes[:30]))
	assert.Equal(t, ' ', runes[30])
	assert.True(t, strings.HasPrefix(string(runes[31:]), "Преступление и наказание"), "author fits its column and must not be cut")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "fits", in: "short", maxLen: 10, want: "short"},
		{name: "exact", in: "abcdefghij", maxLen: 10, want: "abcdefghij"},
		{name: "cut", in: "abcdefghijklmnop", maxLen: 10, want: "abcdefg..."},
		{name: "tiny limit", in: "abcdef", maxLen: 2, want: "ab"},
		{name: "zero limit", in: "abc", maxLen: 0, want: ""},
		{name: "cyrillic fits", in: "Война и мир", maxLen: 11, want: "Война и мир"},
		{name: "cyrillic cut", in: "Война и мир", maxLen: 8, want: "Война..."},
		{name: "cyrillic tiny", in: "Мир", maxLen: 2, want: "Ми"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
