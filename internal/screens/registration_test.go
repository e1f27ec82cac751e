package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/entries/internal/auth"
	"github.com/idilsaglam/entries/internal/nav"
)

func TestRegistrationValidGoesToLogin(t *testing.T) {
	var m tea.Model = NewRegistration(testEnv(t, "en"))
	m = fillCredentials(t, m, "new.user@example.org", "secret")

	_, cmd := send(t, m, keyType(tea.KeyEnter))
	requireNavigate(t, cmd, nav.Login)
}

func TestRegistrationInvalidStays(t *testing.T) {
	var m tea.Model = NewRegistration(testEnv(t, "en"))
	m = fillCredentials(t, m, "new.user@example", "secret")

	m, cmd := send(t, m, keyType(tea.KeyEnter))
	require.Nil(t, cmd)
	require.Equal(t, auth.MsgInvalidCredentials, m.(RegistrationModel).Err())
	require.Equal(t, nav.Registration, m.(RegistrationModel).Screen())
}

func TestRegistrationCancel(t *testing.T) {
	var m tea.Model = NewRegistration(testEnv(t, "en"))
	m = typeText(t, m, "half@typed")
	_, cmd := send(t, m, keyType(tea.KeyEsc))
	requireNavigate(t, cmd, nav.Login)
}

func TestRegistrationFocusCycles(t *testing.T) {
	var m tea.Model = NewRegistration(testEnv(t, "en"))
	m, _ = send(t, m, keyType(tea.KeyTab))
	require.Equal(t, fieldPassword, m.(RegistrationModel).form.focus)
	m, _ = send(t, m, keyType(tea.KeyTab))
	require.Equal(t, fieldEmail, m.(RegistrationModel).form.focus)
	m, _ = send(t, m, keyType(tea.KeyShiftTab))
	require.Equal(t, fieldPassword, m.(RegistrationModel).form.focus)
}
