package app

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/librarian/pkg/app/screens"
	"github.com/kerbaras/librarian/pkg/config"
	"github.com/kerbaras/librarian/pkg/services"
)

type App struct {
	config config.Config
}

func NewApp(cfg config.Config) *App {
	return &App{config: cfg}
}

func (a *App) Run() error {
	// Anything written to the log would tear the alt screen.
	if a.config.LogFile != "" {
		f, err := tea.LogToFile(a.config.LogFile, "librarian")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	library, closeFn, err := services.NewLibraryFromConfig(a.config)
	if err != nil {
		return err
	}
	defer closeFn()

	model := screens.NewRootScreen(library, a.config.Timeout)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
