package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/librarian/pkg/app/styles"
	"github.com/kerbaras/librarian/pkg/services"
)

type HomeScreen struct {
	library *services.Library
	stats   services.Stats
	width   int
	height  int
	err     error
}

func NewHomeScreen(library *services.Library) *HomeScreen {
	return &HomeScreen{library: library}
}

func (s *HomeScreen) Init() tea.Cmd {
	return s.loadStats
}

type statsLoadedMsg struct {
	stats services.Stats
	err   error
}

func (s *HomeScreen) loadStats() tea.Msg {
	stats, err := s.library.Stats()
	return statsLoadedMsg{stats: stats, err: err}
}

func (s *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	case statsLoadedMsg:
		s.stats = msg.stats
		s.err = msg.err
	case tea.KeyMsg:
		switch msg.String() {
		case "v":
			return s, switchTo("books", nil)
		case "b":
			return s, switchTo("borrow", nil)
		}
	}
	return s, nil
}

func (s *HomeScreen) View() string {
	header := styles.TitleStyle.Render("Welcome to the Library")

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	policy := s.library.FinePolicy()
	info := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TextStyle.Render(fmt.Sprintf("Signed in as %s", s.library.User())),
		"",
		styles.LabelStyle.Render("Books")+styles.TextStyle.Render(fmt.Sprintf("%d", s.stats.Total)),
		styles.LabelStyle.Render("Available")+styles.StatusAvailable.Render(fmt.Sprintf("%d", s.stats.Available)),
		styles.LabelStyle.Render("Reserved")+styles.StatusReserved.Render(fmt.Sprintf("%d", s.stats.Reserved)),
		styles.LabelStyle.Render("Borrowed")+styles.StatusBorrowed.Render(fmt.Sprintf("%d", s.stats.Borrowed)),
		styles.LabelStyle.Render("Fines due")+styles.FineStyle.Render(fmt.Sprintf("$%d", s.stats.FinesDue)),
		"",
		styles.MutedStyle.Render(fmt.Sprintf(
			"Books may be kept %d days; each day late costs $%d.",
			policy.BorrowPeriodDays, policy.PerDay,
		)),
	)

	card := styles.CardStyle.Render(info)

	help := styles.HelpStyle.Render("v: view books • b: borrow • tab: switch view • q: quit")

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, card, help)
}
