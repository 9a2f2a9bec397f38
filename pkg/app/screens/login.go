package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/librarian/pkg/app/components"
	"github.com/kerbaras/librarian/pkg/app/styles"
	"github.com/kerbaras/librarian/pkg/services"
)

// LoginScreen picks the reader name used for reservations and loans.
// Passwords are collected but never verified.
type LoginScreen struct {
	library *services.Library
	form    *components.Form
	notice  string
	err     error
}

func NewLoginScreen(library *services.Library) *LoginScreen {
	return &LoginScreen{
		library: library,
		form: components.NewForm(
			components.NewField("Name", "Your name"),
			components.NewPasswordField("Password"),
		),
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	s.err = nil
	s.notice = ""
	return s.form.Focus(0)
}

func (s *LoginScreen) Typing() bool {
	return true
}

func (s *LoginScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.err = msg.err
		if msg.err == nil {
			s.notice = fmt.Sprintf("Signed in as %s", s.library.User())
			return s, s.form.Reset()
		}
		return s, nil

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
			name := s.form.Value(0)
			return s, func() tea.Msg {
				return authDoneMsg{err: s.library.Login(name)}
			}
		case "ctrl+n":
			return s, switchTo("signin", nil)
		case "esc":
			return s, switchTo("home", nil)
		}
	}

	return s, s.form.Update(msg)
}

func (s *LoginScreen) View() string {
	header := styles.TitleStyle.Render("Login")
	help := styles.HelpStyle.Render("↑ ↓: move • enter: next/login • ctrl+n: create account • esc: home • tab: switch view")
	return fmt.Sprintf("%s\n\n%s%s\n%s", header, statusLine(s.err, s.notice), s.form.View(), help)
}

// SigninScreen registers a reader and signs them in.
type SigninScreen struct {
	library *services.Library
	form    *components.Form
	err     error
}

func NewSigninScreen(library *services.Library) *SigninScreen {
	return &SigninScreen{
		library: library,
		form: components.NewForm(
			components.NewField("Name", "Your name"),
			components.NewField("Email", "you@example.com"),
			components.NewPasswordField("Password"),
			components.NewPasswordField("Confirm"),
		),
	}
}

func (s *SigninScreen) Init() tea.Cmd {
	s.err = nil
	return s.form.Reset()
}

func (s *SigninScreen) Typing() bool {
	return true
}

func (s *SigninScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.err = msg.err
		if msg.err == nil {
			return s, switchTo("home", nil)
		}
		return s, nil

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
			v := s.form.Values()
			return s, func() tea.Msg {
				return authDoneMsg{err: s.library.SignUp(v[0], v[1], v[2], v[3])}
			}
		case "esc":
			return s, switchTo("login", nil)
		}
	}

	return s, s.form.Update(msg)
}

func (s *SigninScreen) View() string {
	header := styles.TitleStyle.Render("Sign in")
	help := styles.HelpStyle.Render("↑ ↓: move • enter: next/create • esc: back to login")
	return fmt.Sprintf("%s\n\n%s%s\n%s", header, statusLine(s.err, ""), s.form.View(), help)
}

type authDoneMsg struct {
	err error
}

func statusLine(err error, notice string) string {
	switch {
	case err != nil:
		return styles.StatusError.Render(fmt.Sprintf("Error: %s", err)) + "\n\n"
	case notice != "":
		return styles.NoticeStyle.Render(notice) + "\n\n"
	}
	return ""
}
