package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/librarian/pkg/app/components"
	"github.com/kerbaras/librarian/pkg/app/styles"
	"github.com/kerbaras/librarian/pkg/services"
)

type DetailsScreen struct {
	library *services.Library
	bookID  string
	book    *services.BookView
	notice  string
	width   int
	height  int
	err     error
}

func NewDetailsScreen(library *services.Library, bookID string) *DetailsScreen {
	return &DetailsScreen{
		library: library,
		bookID:  bookID,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadDetails
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			return s, switchTo("edit", s.bookID)
		case "p":
			return s, s.payFine()
		case "r":
			return s, s.reserve()
		case "esc", "backspace":
			return s, switchTo("books", nil)
		}

	case detailsLoadedMsg:
		s.book = msg.book
		s.err = msg.err

	case bookActionMsg:
		s.err = msg.err
		if msg.err == nil {
			s.notice = msg.notice
		}
		return s, s.loadDetails
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.book == nil {
		if s.err != nil {
			return styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n" +
				styles.HelpStyle.Render("esc: back • q: quit")
		}
		return "Loading..."
	}

	header := styles.TitleStyle.Render(s.book.Title)

	var status string
	if s.err != nil {
		status = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.notice != "" {
		status = styles.NoticeStyle.Render(s.notice) + "\n\n"
	}

	help := styles.HelpStyle.Render("e: edit • p: pay fine • r: reserve • esc: back • q: quit")

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, status, s.renderInfo(), help)
}

func (s *DetailsScreen) renderInfo() string {
	b := s.book
	row := func(label, value string, style lipgloss.Style) string {
		return styles.LabelStyle.Render(label) + style.Render(value)
	}
	dash := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}

	lines := []string{
		row("Author", b.Author, styles.TextStyle),
		row("Genre", dash(b.Genre), styles.TextStyle),
		row("Published", strconv.Itoa(b.Published), styles.TextStyle),
		row("Status", string(b.Status), styles.StatusStyle(b.Status)),
	}
	if b.Borrowed {
		lines = append(lines,
			row("Borrowed by", dash(b.BorrowedBy), styles.TextStyle),
			row("Borrow date", dash(b.BorrowDate), styles.TextStyle),
			row("Fine", components.FineLabel(b.Fine), styles.FineStyle),
		)
	}
	if b.Reserved {
		lines = append(lines, row("Reserved by", dash(b.ReservedBy), styles.TextStyle))
	}
	lines = append(lines, "", styles.MutedStyle.Render(fmt.Sprintf("ID: %s", b.ID)))

	card := styles.CardStyle
	if s.width > 4 {
		card = card.Width(s.width - 4)
	}
	return card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Messages
type detailsLoadedMsg struct {
	book *services.BookView
	err  error
}

// Commands
func (s *DetailsScreen) loadDetails() tea.Msg {
	book, err := s.library.Book(s.bookID)
	return detailsLoadedMsg{book: book, err: err}
}

func (s *DetailsScreen) payFine() tea.Cmd {
	return func() tea.Msg {
		paid, err := s.library.PayFine(s.bookID)
		if err != nil {
			return bookActionMsg{err: err}
		}
		return bookActionMsg{notice: fmt.Sprintf("Fine of $%d paid", paid)}
	}
}

func (s *DetailsScreen) reserve() tea.Cmd {
	return func() tea.Msg {
		if err := s.library.Reserve(s.bookID, ""); err != nil {
			return bookActionMsg{err: err}
		}
		return bookActionMsg{notice: fmt.Sprintf("Reserved for %s", s.library.User())}
	}
}
