package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/librarian/pkg/data"
)

var (
	// Color palette
	Primary    = lipgloss.Color("#6B5B95")
	Accent     = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Foreground = lipgloss.Color("#EEFFFF")

	RoundedBorder = lipgloss.RoundedBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true).
			Width(14)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(1, 2).
			MarginBottom(1)

	StatusAvailable = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusReserved = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusBorrowed = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(Success)

	FineStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Navbar
	BrandStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Accent).
				Padding(0, 1)
)

func StatusStyle(status data.Status) lipgloss.Style {
	switch status {
	case data.StatusAvailable:
		return StatusAvailable
	case data.StatusReserved:
		return StatusReserved
	case data.StatusBorrowed:
		return StatusBorrowed
	default:
		return MutedStyle
	}
}
