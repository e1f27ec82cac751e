package screens

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/entries/internal/i18n"
	"github.com/idilsaglam/entries/internal/nav"
	"github.com/idilsaglam/entries/internal/ui"
)

func testEnv(t *testing.T, lang string) Env {
	t.Helper()
	msgs, err := i18n.New(lang)
	require.NoError(t, err)
	return Env{
		Msgs:  msgs,
		Theme: ui.ThemeByName("mono"),
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// send feeds one message to m and returns the updated model and command.
func send(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(msg)
}

// typeText feeds s one rune at a time.
func typeText(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		m, _ = m.Update(keyMsg(string(r)))
	}
	return m
}

// requireNavigate runs cmd and checks it asks for a transition to want.
func requireNavigate(t *testing.T, cmd tea.Cmd, want nav.Screen) nav.Params {
	t.Helper()
	require.NotNil(t, cmd, "expected a navigate command")
	msg, ok := cmd().(nav.NavigateMsg)
	require.True(t, ok, "expected nav.NavigateMsg")
	require.Equal(t, want, msg.To)
	return msg.Params
}
