package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"library-catalog/library"
)

type shell struct {
	sc     *bufio.Scanner
	out    io.Writer
	mgr    *library.LibraryManager
	prompt bool
}

// runShell reads commands from in until EOF or "exit". Prompts are only
// written when prompt is set so piped input produces clean output.
func runShell(in io.Reader, out io.Writer, mgr *library.LibraryManager, prompt bool) error {
	s := &shell{sc: bufio.NewScanner(in), out: out, mgr: mgr, prompt: prompt}

	if prompt {
		fmt.Fprintln(out, "Welcome to the Library Catalog!")
		s.printHelp()
	}

	for {
		if prompt {
			fmt.Fprint(out, "\n> ")
		}
		if !s.sc.Scan() {
			break
		}
		cmd := strings.TrimSpace(s.sc.Text())

		switch cmd {
		case "":
			continue
		case "add book":
			s.handleAddBook()
		case "add user":
			s.handleAddUser()
		case "list books":
			listBooks(out, mgr)
		case "list users":
			s.handleListUsers()
		case "find book":
			s.handleFindBook()
		case "borrow":
			s.handleBorrow()
		case "return":
			s.handleReturn()
		case "count":
			fmt.Fprintf(out, "Total books: %d\n", mgr.TotalBooks())
		case "help":
			s.printHelp()
		case "exit":
			if prompt {
				fmt.Fprintln(out, "Goodbye!")
			}
			return nil
		default:
			fmt.Fprintln(out, "Unknown command. Type 'help' to see the available commands.")
		}
	}
	return s.sc.Err()
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.out, "Available commands:")
	fmt.Fprintln(s.out, "  Books: add book, list books, find book, count")
	fmt.Fprintln(s.out, "  Users: add user, list users")
	fmt.Fprintln(s.out, "  Circulation: borrow, return")
	fmt.Fprintln(s.out, "  System: help, exit")
}

// ask prints label when prompting and returns the next trimmed line.
func (s *shell) ask(label string) (string, bool) {
	if s.prompt {
		fmt.Fprint(s.out, label)
	}
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

func (s *shell) handleAddBook() {
	title, ok := s.ask("Title: ")
	if !ok {
		return
	}
	author, ok := s.ask("Author: ")
	if !ok {
		return
	}
	yearStr, ok := s.ask("Year: ")
	if !ok {
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid year: %s\n", yearStr)
		return
	}
	availStr, ok := s.ask("Available (true/false) [true]: ")
	if !ok {
		return
	}
	available := true
	if availStr != "" {
		if available, err = strconv.ParseBool(availStr); err != nil {
			fmt.Fprintf(s.out, "Invalid availability: %s\n", availStr)
			return
		}
	}
	catStr, ok := s.ask("Categories (comma separated, optional): ")
	if !ok {
		return
	}

	b, err := s.mgr.AddBook(title, author, year, available, splitCategories(catStr)...)
	if err != nil {
		fmt.Fprintf(s.out, "Error adding book: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added book '%s'. Total books: %d\n", b.Title, s.mgr.TotalBooks())
}

func (s *shell) handleAddUser() {
	name, ok := s.ask("Name: ")
	if !ok {
		return
	}
	email, ok := s.ask("Email: ")
	if !ok {
		return
	}
	id, ok := s.ask("Membership ID (blank to generate): ")
	if !ok {
		return
	}
	u := s.mgr.AddUser(name, email, id)
	fmt.Fprintf(s.out, "Added user '%s' with membership ID %s\n", u.Name, u.MembershipID)
}

func (s *shell) handleListUsers() {
	users := s.mgr.Users()
	if len(users) == 0 {
		fmt.Fprintln(s.out, "No users registered.")
		return
	}
	fmt.Fprintf(s.out, "%-36s %-25s %s\n", "Membership ID", "Name", "Email")
	fmt.Fprintln(s.out, strings.Repeat("-", 90))
	for _, u := range users {
		fmt.Fprintf(s.out, "%-36s %-25s %s\n", u.MembershipID, u.Name, u.Email)
	}
}

func (s *shell) handleFindBook() {
	title, ok := s.ask("Title: ")
	if !ok {
		return
	}
	b := s.mgr.FindBook(title)
	if b == nil {
		fmt.Fprintf(s.out, "No book titled '%s'.\n", title)
		return
	}
	fmt.Fprintln(s.out, library.PrettyBook(b))
	if len(b.Categories) > 0 {
		fmt.Fprintf(s.out, "Categories: %s\n", strings.Join(b.Categories, ", "))
	}
}

func (s *shell) handleBorrow() {
	title, ok := s.ask("Title: ")
	if !ok {
		return
	}
	b, err := s.mgr.BorrowBook(title)
	switch {
	case errors.Is(err, library.ErrBookNotFound):
		fmt.Fprintf(s.out, "No book titled '%s'.\n", title)
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	default:
		fmt.Fprintf(s.out, "Book '%s' borrowed.\n", b.Title)
	}
}

func (s *shell) handleReturn() {
	title, ok := s.ask("Title: ")
	if !ok {
		return
	}
	b, err := s.mgr.ReturnBook(title)
	if err != nil {
		fmt.Fprintf(s.out, "No book titled '%s'.\n", title)
		return
	}
	fmt.Fprintf(s.out, "Book '%s' returned.\n", b.Title)
}

func listBooks(out io.Writer, mgr *library.LibraryManager) {
	books := mgr.Books()
	if len(books) == 0 {
		fmt.Fprintln(out, "No books in library.")
		return
	}
	fmt.Fprintf(out, "%-30s %-25s %-6s %-10s\n", "Title", "Author", "Year", "Available")
	fmt.Fprintln(out, strings.Repeat("-", 75))
	for _, b := range books {
		fmt.Fprintln(out, library.PrettyBook(b))
	}
	fmt.Fprintf(out, "Total books: %d\n", mgr.TotalBooks())
}

// splitCategories turns "a, b" into ["a" "b"]. Blank input means no categories;
// blank entries are kept so validation can reject them.
func splitCategories(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
