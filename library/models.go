package library

import "strings"

// Book represents metadata and current availability of a book in the catalog.
// Available is the only field that changes after construction.
type Book struct {
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Year       int      `json:"year"`
	Available  bool     `json:"available"`
	Categories []string `json:"categories"`
}

// NewBook builds a Book, rejecting any category that is empty or only whitespace.
// Year and the text fields are taken as given.
func NewBook(title, author string, year int, available bool, categories ...string) (*Book, error) {
	for i, c := range categories {
		if strings.TrimSpace(c) == "" {
			return nil, &ValidationError{Field: "categories", Index: i, Reason: "category cannot be empty"}
		}
	}
	cats := make([]string, len(categories))
	copy(cats, categories)
	return &Book{
		Title:      title,
		Author:     author,
		Year:       year,
		Available:  available,
		Categories: cats,
	}, nil
}

// User represents a registered library member.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MembershipID string `json:"membership_id"`
}

// NewUser builds a User. No field is validated.
func NewUser(name, email, membershipID string) *User {
	return &User{Name: name, Email: email, MembershipID: membershipID}
}

// Library owns the books and users of one catalog. Both sequences keep
// insertion order and only ever grow.
type Library struct {
	Books []*Book
	Users []*User
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{Books: []*Book{}, Users: []*User{}}
}

// AddBook appends b to the library's books.
func (l *Library) AddBook(b *Book) { AddBook(&l.Books, b) }

// AddUser appends u to the library's users.
func (l *Library) AddUser(u *User) { l.Users = append(l.Users, u) }

// TotalBooks reports how many books the library currently holds.
func (l *Library) TotalBooks() int { return len(l.Books) }
