// Package app is the root Bubble Tea model. It owns the navigation stack
// and routes every message to the screen on top.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/entries/internal/nav"
	"github.com/idilsaglam/entries/internal/screens"
)

// Model is the root model passed to tea.NewProgram.
type Model struct {
	nav *nav.Navigator
	log *slog.Logger
}

// New mounts the login screen and returns the root model.
func New(env screens.Env) Model {
	log := env.Log
	if log == nil {
		log = slog.Default()
	}
	n := nav.NewNavigator(screens.Factory(env))
	// Login is always registered, so the first transition cannot fail.
	_, _ = n.Navigate(nav.Login, nil)
	return Model{nav: n, log: log}
}

// Current is the screen on top of the stack.
func (m Model) Current() nav.View { return m.nav.Current() }

// Screens lists the mounted screens, bottom first.
func (m Model) Screens() []nav.Screen { return m.nav.Screens() }

func (m Model) Init() tea.Cmd {
	return m.nav.Current().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.nav.Resize(msg.Width, msg.Height)
		return m, nil
	case nav.NavigateMsg:
		from := m.nav.Current().Screen()
		cmd, err := m.nav.Navigate(msg.To, msg.Params)
		if err != nil {
			m.log.Error("navigate", "from", from, "to", msg.To, "err", err)
			return m, nil
		}
		m.log.Debug("navigate", "from", from, "to", msg.To, "stack", m.nav.Screens())
		return m, cmd
	}
	return m, m.nav.Update(msg)
}

func (m Model) View() string {
	return m.nav.Current().View()
}
