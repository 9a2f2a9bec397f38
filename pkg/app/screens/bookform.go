package screens

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/librarian/pkg/app/components"
	"github.com/kerbaras/librarian/pkg/app/styles"
	"github.com/kerbaras/librarian/pkg/services"
)

// BookFormScreen adds a new book, or edits one when bookID is set.
type BookFormScreen struct {
	library *services.Library
	bookID  string
	form    *components.Form
	notice  string
	width   int
	height  int
	err     error
}

func newBookForm() *components.Form {
	return components.NewForm(
		components.NewField("Title", "The Hobbit"),
		components.NewField("Author", "J. R. R. Tolkien"),
		components.NewField("Genre", "Fantasy"),
		components.NewField("Year", "1937"),
	)
}

func NewAddBookScreen(library *services.Library) *BookFormScreen {
	return &BookFormScreen{library: library, form: newBookForm()}
}

func NewEditBookScreen(library *services.Library, bookID string) *BookFormScreen {
	return &BookFormScreen{library: library, bookID: bookID, form: newBookForm()}
}

func (s *BookFormScreen) editing() bool {
	return s.bookID != ""
}

func (s *BookFormScreen) Init() tea.Cmd {
	s.err = nil
	s.notice = ""
	if s.editing() {
		return tea.Batch(s.form.Focus(0), s.loadBook)
	}
	return s.form.Focus(s.form.Focused())
}

func (s *BookFormScreen) Typing() bool {
	return true
}

func (s *BookFormScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case editLoadedMsg:
		s.err = msg.err
		if msg.book != nil {
			s.form.SetValues(msg.book.Title, msg.book.Author, msg.book.Genre, strconv.Itoa(msg.book.Published))
		}
		return s, nil

	case bookSavedMsg:
		s.err = msg.err
		if msg.err != nil {
			return s, nil
		}
		if s.editing() {
			return s, switchTo("details", s.bookID)
		}
		s.notice = fmt.Sprintf("Added %q", msg.title)
		return s, s.form.Reset()

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			return s, s.form.Prev()
		case "down":
			return s, s.form.Next()
		case "enter":
			if !s.form.OnLast() {
				return s, s.form.Next()
			}
			return s, s.save()
		case "ctrl+s":
			return s, s.save()
		case "esc":
			if s.editing() {
				return s, switchTo("details", s.bookID)
			}
			return s, switchTo("home", nil)
		}
	}

	return s, s.form.Update(msg)
}

func (s *BookFormScreen) input() (services.BookInput, error) {
	values := s.form.Values()
	in := services.BookInput{
		Title:  values[0],
		Author: values[1],
		Genre:  values[2],
	}
	if year := strings.TrimSpace(values[3]); year != "" {
		n, err := strconv.Atoi(year)
		if err != nil {
			return in, fmt.Errorf("%w: year must be a number", services.ErrInvalidBook)
		}
		in.Published = n
	}
	return in, nil
}

func (s *BookFormScreen) View() string {
	title := "Add Book"
	if s.editing() {
		title = "Edit Book"
	}
	header := styles.TitleStyle.Render(title)

	var status string
	if s.err != nil {
		status = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.notice != "" {
		status = styles.NoticeStyle.Render(s.notice) + "\n\n"
	}

	help := styles.HelpStyle.Render("↑ ↓: move • enter: next/save • ctrl+s: save • esc: back • tab: switch view")

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, status, s.form.View(), help)
}

// Messages
type editLoadedMsg struct {
	book *services.BookView
	err  error
}

type bookSavedMsg struct {
	title string
	err   error
}

// Commands
func (s *BookFormScreen) loadBook() tea.Msg {
	book, err := s.library.Book(s.bookID)
	return editLoadedMsg{book: book, err: err}
}

func (s *BookFormScreen) save() tea.Cmd {
	in, err := s.input()
	if err != nil {
		return func() tea.Msg { return bookSavedMsg{err: err} }
	}
	return func() tea.Msg {
		if s.editing() {
			return bookSavedMsg{title: in.Title, err: s.library.EditBook(s.bookID, in)}
		}
		book, err := s.library.AddBook(in)
		if err != nil {
			return bookSavedMsg{err: err}
		}
		return bookSavedMsg{title: book.Title}
	}
}
