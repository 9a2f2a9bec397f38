package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/librarian/pkg/app/components"
	"github.com/kerbaras/librarian/pkg/app/styles"
	"github.com/kerbaras/librarian/pkg/data"
	"github.com/kerbaras/librarian/pkg/services"
)

// BorrowScreen lends books out and takes them back.
type BorrowScreen struct {
	library  *services.Library
	table    *components.BookTable
	borrower textinput.Model
	pending  string // id of the book waiting for a borrower name
	notice   string
	width    int
	height   int
	err      error
}

func NewBorrowScreen(library *services.Library) *BorrowScreen {
	ti := textinput.New()
	ti.Placeholder = "Borrower name"
	ti.CharLimit = 60
	ti.Width = 30

	return &BorrowScreen{
		library:  library,
		table:    components.NewBookTable(),
		borrower: ti,
	}
}

func (s *BorrowScreen) Init() tea.Cmd {
	s.notice = ""
	return s.loadBooks
}

func (s *BorrowScreen) Typing() bool {
	return s.pending != ""
}

func (s *BorrowScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.table.SetSize(msg.Width-4, msg.Height-14)
		return s, nil

	case booksListedMsg:
		if msg.err != nil {
			s.err = msg.err
		} else {
			s.table.SetItems(msg.books)
		}
		return s, nil

	case bookActionMsg:
		s.err = msg.err
		if msg.err == nil {
			s.notice = msg.notice
		}
		return s, s.loadBooks

	case tea.KeyMsg:
		if s.pending != "" {
			return s.updatePrompt(msg)
		}
		s.err = nil
		s.notice = ""
		switch msg.String() {
		case "up", "k":
			s.table.Prev()
		case "down", "j":
			s.table.Next()
		case "b", "enter":
			b := s.table.Selected()
			if b == nil {
				return s, nil
			}
			if b.Borrowed {
				s.err = services.ErrAlreadyBorrowed
				return s, nil
			}
			s.pending = b.ID
			s.borrower.SetValue(s.library.User())
			s.borrower.CursorEnd()
			return s, s.borrower.Focus()
		case "t":
			if b := s.table.Selected(); b != nil {
				return s, s.returnBook(b.ID)
			}
		}
	}

	if s.pending != "" {
		var cmd tea.Cmd
		s.borrower, cmd = s.borrower.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *BorrowScreen) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.pending = ""
		s.borrower.Blur()
		return s, nil
	case "enter":
		id, name := s.pending, s.borrower.Value()
		s.pending = ""
		s.borrower.Blur()
		return s, s.borrow(id, name)
	}
	var cmd tea.Cmd
	s.borrower, cmd = s.borrower.Update(msg)
	return s, cmd
}

func (s *BorrowScreen) View() string {
	header := styles.TitleStyle.Render("Borrow Book")

	var status string
	if s.err != nil {
		status = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.notice != "" {
		status = styles.NoticeStyle.Render(s.notice) + "\n\n"
	}

	var prompt string
	if s.pending != "" {
		prompt = styles.FocusedInputStyle.Render(s.borrower.View()) + "\n"
	}

	help := "↑/k ↓/j: navigate • b/enter: borrow • t: return • tab: switch view • q: quit"
	if s.pending != "" {
		help = "enter: confirm • esc: cancel"
	}

	return fmt.Sprintf("%s\n\n%s%s\n%s%s",
		header,
		status,
		s.table.View(),
		prompt,
		styles.HelpStyle.Render(help),
	)
}

// Commands
func (s *BorrowScreen) loadBooks() tea.Msg {
	books, err := s.library.Books(data.Filter{})
	return booksListedMsg{books: books, err: err}
}

func (s *BorrowScreen) borrow(id, name string) tea.Cmd {
	return func() tea.Msg {
		if err := s.library.Borrow(id, name); err != nil {
			return bookActionMsg{err: err}
		}
		book, err := s.library.Book(id)
		if err != nil {
			return bookActionMsg{err: err}
		}
		return bookActionMsg{notice: fmt.Sprintf("%q borrowed by %s, due in %d days",
			book.Title, book.BorrowedBy, s.library.FinePolicy().BorrowPeriodDays)}
	}
}

func (s *BorrowScreen) returnBook(id string) tea.Cmd {
	return func() tea.Msg {
		if err := s.library.Return(id); err != nil {
			return bookActionMsg{err: err}
		}
		return bookActionMsg{notice: "Book returned"}
	}
}
