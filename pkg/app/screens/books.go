package screens

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/librarian/pkg/app/components"
	"github.com/kerbaras/librarian/pkg/app/styles"
	"github.com/kerbaras/librarian/pkg/data"
	"github.com/kerbaras/librarian/pkg/services"
)

type booksFocus int

const (
	focusTable booksFocus = iota
	focusSearch
	focusGenres
	focusYears
)

// BooksScreen lists the catalog with genre, year and text filters.
type BooksScreen struct {
	library *services.Library
	table   *components.BookTable
	genres  *components.Checklist
	years   *components.Checklist
	search  textinput.Model
	focus   booksFocus
	notice  string
	width   int
	height  int
	err     error

	// generation of the latest reload; older listings are dropped
	gen int
}

func NewBooksScreen(library *services.Library) *BooksScreen {
	ti := textinput.New()
	ti.Placeholder = "Search title/author"
	ti.CharLimit = 100
	ti.Width = 30

	return &BooksScreen{
		library: library,
		table:   components.NewBookTable(),
		genres:  components.NewChecklist("Filter by Genre"),
		years:   components.NewChecklist("Filter by Year"),
		search:  ti,
	}
}

func (s *BooksScreen) Init() tea.Cmd {
	s.notice = ""
	return s.reload()
}

func (s *BooksScreen) Typing() bool {
	return s.focus == focusSearch
}

// Filter is the current selection of the three filter controls.
func (s *BooksScreen) Filter() data.Filter {
	return data.Filter{
		Genres: s.genres.Checked(),
		Years:  s.years.Checked(),
		Search: s.search.Value(),
	}
}

func (s *BooksScreen) clearFilters() {
	s.genres.Clear()
	s.years.Clear()
	s.search.Reset()
}

func (s *BooksScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.table.SetSize(msg.Width-4, msg.Height-16)
		return s, nil

	case booksListedMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		if msg.err != nil {
			s.err = msg.err
		} else {
			s.genres.SetItems(msg.genres)
			s.years.SetItems(msg.years)
			s.table.SetItems(msg.books)
		}
		return s, nil

	case bookActionMsg:
		s.err = msg.err
		if msg.err == nil {
			s.notice = msg.notice
		}
		return s, s.reload()

	case tea.KeyMsg:
		switch s.focus {
		case focusSearch:
			return s.updateSearch(msg)
		case focusGenres:
			return s.updatePicker(s.genres, msg)
		case focusYears:
			return s.updatePicker(s.years, msg)
		}
		return s.updateTable(msg)
	}

	if s.focus == focusSearch {
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *BooksScreen) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s.err = nil
	s.notice = ""
	switch msg.String() {
	case "up", "k":
		s.table.Prev()
	case "down", "j":
		s.table.Next()
	case "/":
		s.focus = focusSearch
		return s, s.search.Focus()
	case "g":
		s.focus = focusGenres
	case "y":
		s.focus = focusYears
	case "c":
		s.clearFilters()
		return s, s.reload()
	case "p":
		if b := s.table.Selected(); b != nil {
			return s, s.payFine(b.ID)
		}
	case "r":
		if b := s.table.Selected(); b != nil {
			return s, s.reserve(b.ID)
		}
	case "e":
		if b := s.table.Selected(); b != nil {
			return s, switchTo("edit", b.ID)
		}
	case "enter":
		if b := s.table.Selected(); b != nil {
			return s, switchTo("details", b.ID)
		}
	}
	return s, nil
}

// The table follows the search term as it is typed.
func (s *BooksScreen) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		s.search.Blur()
		s.focus = focusTable
		return s, nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	return s, tea.Batch(cmd, s.reload())
}

func (s *BooksScreen) updatePicker(c *components.Checklist, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		c.Prev()
	case "down", "j":
		c.Next()
	case " ", "space", "x":
		c.Toggle()
		return s, s.reload()
	case "esc", "enter":
		s.focus = focusTable
	}
	return s, nil
}

func (s *BooksScreen) View() string {
	header := styles.TitleStyle.Render("Library Books")

	var status string
	if s.err != nil {
		status = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.notice != "" {
		status = styles.NoticeStyle.Render(s.notice) + "\n\n"
	}

	inputStyle := styles.InputStyle
	if s.focus == focusSearch {
		inputStyle = styles.FocusedInputStyle
	}
	filters := lipgloss.JoinHorizontal(
		lipgloss.Center,
		inputStyle.Render(s.search.View()),
		"  ",
		styles.MutedStyle.Render(fmt.Sprintf("Genres: %s", s.genres.Summary())),
		"  ",
		styles.MutedStyle.Render(fmt.Sprintf("Years: %s", s.years.Summary())),
	)

	var body string
	switch s.focus {
	case focusGenres:
		body = styles.CardStyle.Render(s.genres.View())
	case focusYears:
		body = styles.CardStyle.Render(s.years.View())
	default:
		body = s.table.View()
	}

	help := styles.HelpStyle.Render(s.helpText())

	return fmt.Sprintf("%s\n\n%s%s\n\n%s\n%s", header, status, filters, body, help)
}

func (s *BooksScreen) helpText() string {
	switch s.focus {
	case focusSearch:
		return "type to search • enter/esc: done"
	case focusGenres, focusYears:
		return "↑/k ↓/j: navigate • space: toggle • enter/esc: done"
	}
	return "↑/k ↓/j: navigate • enter: details • e: edit • p: pay fine • r: reserve • /: search • g: genres • y: years • c: clear filters • tab: switch view • q: quit"
}

// Messages
type booksListedMsg struct {
	books  []services.BookView
	genres []string
	years  []string
	gen    int
	err    error
}

// bookActionMsg is the outcome of an action on one book.
type bookActionMsg struct {
	notice string
	err    error
}

// Commands
func (s *BooksScreen) reload() tea.Cmd {
	s.gen++
	gen := s.gen
	filter := s.Filter()
	return func() tea.Msg {
		books, err := s.library.Books(filter)
		if err != nil {
			return booksListedMsg{gen: gen, err: err}
		}
		genres, err := s.library.GenreOptions()
		if err != nil {
			return booksListedMsg{gen: gen, err: err}
		}
		years, err := s.library.YearOptions()
		if err != nil {
			return booksListedMsg{gen: gen, err: err}
		}
		return booksListedMsg{books: books, genres: genres, years: years, gen: gen}
	}
}

func (s *BooksScreen) payFine(id string) tea.Cmd {
	return func() tea.Msg {
		paid, err := s.library.PayFine(id)
		if errors.Is(err, services.ErrNoFine) {
			return bookActionMsg{err: fmt.Errorf("nothing to pay on this book")}
		}
		return bookActionMsg{notice: fmt.Sprintf("Fine of $%d paid", paid), err: err}
	}
}

func (s *BooksScreen) reserve(id string) tea.Cmd {
	return func() tea.Msg {
		if err := s.library.Reserve(id, ""); err != nil {
			return bookActionMsg{err: err}
		}
		return bookActionMsg{notice: fmt.Sprintf("Reserved for %s", s.library.User())}
	}
}
