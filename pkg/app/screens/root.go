package screens

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/librarian/pkg/app/styles"
	"github.com/kerbaras/librarian/pkg/services"
)

type screenType int

const (
	homeView screenType = iota
	addView
	booksView
	borrowView
	loginView
	detailsView
	editView
	signinView
)

// navbar order
var tabs = []struct {
	view  screenType
	label string
}{
	{homeView, "Home"},
	{addView, "Add Book"},
	{booksView, "View Books"},
	{borrowView, "Borrow Book"},
	{loginView, "Login"},
}

// SwitchScreenMsg asks the root screen to show another screen. Data carries
// the book id for the details and edit screens.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

func switchTo(screen string, data interface{}) tea.Cmd {
	return func() tea.Msg {
		return SwitchScreenMsg{Screen: screen, Data: data}
	}
}

// booksLoadedMsg reports the result of the startup fetch.
type booksLoadedMsg struct {
	count int
	err   error
}

// typer is implemented by screens that may be capturing text input.
type typer interface {
	Typing() bool
}

type RootScreen struct {
	library *services.Library
	timeout time.Duration

	loading bool
	spinner spinner.Model

	currentView screenType
	home        *HomeScreen
	add         *BookFormScreen
	books       *BooksScreen
	borrow      *BorrowScreen
	login       *LoginScreen
	details     *DetailsScreen
	edit        *BookFormScreen
	signin      *SigninScreen

	width  int
	height int
}

func NewRootScreen(library *services.Library, timeout time.Duration) *RootScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Accent)

	return &RootScreen{
		library:     library,
		timeout:     timeout,
		loading:     true,
		spinner:     s,
		currentView: homeView,
		home:        NewHomeScreen(library),
		add:         NewAddBookScreen(library),
		books:       NewBooksScreen(library),
		borrow:      NewBorrowScreen(library),
		login:       NewLoginScreen(library),
		signin:      NewSigninScreen(library),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.spinner.Tick, r.fetchBooks)
}

// fetchBooks runs the one startup fetch. Failures are only logged by the
// library; the catalog stays empty.
func (r *RootScreen) fetchBooks() tea.Msg {
	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	n, err := r.library.Load(ctx)
	return booksLoadedMsg{count: n, err: err}
}

func (r *RootScreen) active() tea.Model {
	switch r.currentView {
	case homeView:
		return r.home
	case addView:
		return r.add
	case booksView:
		return r.books
	case borrowView:
		return r.borrow
	case loginView:
		return r.login
	case detailsView:
		return r.details
	case editView:
		return r.edit
	case signinView:
		return r.signin
	}
	return r.home
}

func (r *RootScreen) show(view screenType) tea.Cmd {
	r.currentView = view
	screen := r.active()
	if r.width > 0 {
		screen.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height})
	}
	return screen.Init()
}

func (r *RootScreen) tabIndex() int {
	for i, t := range tabs {
		if t.view == r.currentView {
			return i
		}
	}
	return -1
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		for _, screen := range []tea.Model{r.home, r.add, r.books, r.borrow, r.login, r.signin} {
			screen.Update(msg)
		}
		if r.details != nil {
			r.details.Update(msg)
		}
		if r.edit != nil {
			r.edit.Update(msg)
		}
		return r, nil

	case spinner.TickMsg:
		if !r.loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case booksLoadedMsg:
		r.loading = false
		return r, r.show(r.currentView)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if t, ok := r.active().(typer); !ok || !t.Typing() {
				return r, tea.Quit
			}
		case "tab", "shift+tab":
			i := r.tabIndex()
			if i < 0 {
				// sub-screens are left with esc
				break
			}
			if msg.String() == "tab" {
				i = (i + 1) % len(tabs)
			} else {
				i = (i - 1 + len(tabs)) % len(tabs)
			}
			return r, r.show(tabs[i].view)
		}
		if r.loading {
			return r, nil
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "home":
			return r, r.show(homeView)
		case "books":
			return r, r.show(booksView)
		case "borrow":
			return r, r.show(borrowView)
		case "login":
			return r, r.show(loginView)
		case "signin":
			return r, r.show(signinView)
		case "details":
			if id, ok := msg.Data.(string); ok {
				r.details = NewDetailsScreen(r.library, id)
				return r, r.show(detailsView)
			}
		case "edit":
			if id, ok := msg.Data.(string); ok {
				r.edit = NewEditBookScreen(r.library, id)
				return r, r.show(editView)
			}
		}
		return r, nil
	}

	// Forward message to active screen
	_, cmd := r.active().Update(msg)
	return r, cmd
}

func (r *RootScreen) View() string {
	navbar := r.renderNavbar()

	if r.loading {
		return fmt.Sprintf("%s\n\n%s Fetching books...", navbar, r.spinner.View())
	}

	return fmt.Sprintf("%s\n\n%s", navbar, r.active().View())
}

func (r *RootScreen) renderNavbar() string {
	items := []string{styles.BrandStyle.Render("Library System")}
	current := r.tabIndex()
	for i, t := range tabs {
		if i == current {
			items = append(items, styles.ActiveTabStyle.Render(t.label))
		} else {
			items = append(items, styles.InactiveTabStyle.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
