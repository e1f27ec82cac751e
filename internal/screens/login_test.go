package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/entries/internal/auth"
	"github.com/idilsaglam/entries/internal/nav"
)

func fillCredentials(t *testing.T, m tea.Model, email, password string) tea.Model {
	t.Helper()
	m = typeText(t, m, email)
	m, _ = send(t, m, keyType(tea.KeyTab))
	return typeText(t, m, password)
}

func TestLoginRejectsBadInput(t *testing.T) {
	cases := []struct{ name, email, password string }{
		{"empty", "", ""},
		{"no password", "a@b.co", ""},
		{"blank password", "a@b.co", "   "},
		{"bad email", "not-an-email", "x"},
		{"long tld", "a@b.toolong", "x"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var m tea.Model = NewLogin(testEnv(t, "en"))
			m = fillCredentials(t, m, c.email, c.password)

			m, cmd := send(t, m, keyType(tea.KeyEnter))
			require.Nil(t, cmd)
			got := m.(LoginModel)
			require.Equal(t, auth.MsgInvalidCredentials, got.Err())
			require.Contains(t, got.View(), auth.MsgInvalidCredentials)
		})
	}
}

func TestLoginAcceptsValidInput(t *testing.T) {
	var m tea.Model = NewLogin(testEnv(t, "en"))
	m = fillCredentials(t, m, "a@b.co", "x")

	m, cmd := send(t, m, keyType(tea.KeyEnter))
	params := requireNavigate(t, cmd, nav.Home)
	require.Empty(t, params)
	require.Empty(t, m.(LoginModel).Err())
}

func TestLoginErrorClearsOnSuccess(t *testing.T) {
	var m tea.Model = NewLogin(testEnv(t, "en"))
	m, _ = send(t, m, keyType(tea.KeyEnter))
	require.NotEmpty(t, m.(LoginModel).Err())

	m = fillCredentials(t, m, "a@b.co", "x")
	m, cmd := send(t, m, keyType(tea.KeyEnter))
	requireNavigate(t, cmd, nav.Home)
	require.Empty(t, m.(LoginModel).Err())
}

func TestLoginRegisterLink(t *testing.T) {
	var m tea.Model = NewLogin(testEnv(t, "en"))
	_, cmd := send(t, m, keyType(tea.KeyCtrlR))
	requireNavigate(t, cmd, nav.Registration)
}

func TestLoginEnterResetsForm(t *testing.T) {
	var m tea.Model = NewLogin(testEnv(t, "en"))
	m = fillCredentials(t, m, "bad", "pw")
	m, _ = send(t, m, keyType(tea.KeyEnter))
	require.NotEmpty(t, m.(LoginModel).Err())

	v, _ := m.(LoginModel).Enter(nil)
	login := v.(LoginModel)
	require.Empty(t, login.Err())
	require.Empty(t, login.form.credentials().Email)
	require.Empty(t, login.form.credentials().Password)
	require.Equal(t, fieldEmail, login.form.focus)
}

func TestLoginPasswordIsMasked(t *testing.T) {
	var m tea.Model = NewLogin(testEnv(t, "en"))
	m = fillCredentials(t, m, "a@b.co", "hunter2")
	require.NotContains(t, m.View(), "hunter2")
	require.Equal(t, "hunter2", m.(LoginModel).form.credentials().Password)
}

func TestLoginLocalisedError(t *testing.T) {
	var m tea.Model = NewLogin(testEnv(t, "fr"))
	m, _ = send(t, m, keyType(tea.KeyEnter))
	require.Equal(t, "Veuillez saisir un e-mail et un mot de passe valides.", m.(LoginModel).Err())
}
