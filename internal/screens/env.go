// Package screens implements the four views of the app: login,
// registration, the entry list and the new entry form. Each view keeps its
// own input state and talks to the others only through nav.Navigate.
package screens

import (
	"log/slog"

	"github.com/idilsaglam/entries/internal/auth"
	"github.com/idilsaglam/entries/internal/i18n"
	"github.com/idilsaglam/entries/internal/nav"
	"github.com/idilsaglam/entries/internal/ui"
)

// Env is what every screen needs from the outside.
type Env struct {
	Msgs  *i18n.Catalog
	Theme ui.Theme
	Log   *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Log == nil {
		return slog.Default()
	}
	return e.Log
}

// errorText localises a validation error.
func (e Env) errorText(err error) string {
	kind, ok := auth.KindOf(err)
	if !ok {
		return err.Error()
	}
	switch kind {
	case auth.KindCredentials:
		return e.Msgs.T("ErrInvalidCredentials")
	case auth.KindTitle:
		return e.Msgs.T("ErrEmptyTitle")
	}
	return err.Error()
}

// Factory mounts fresh screens.
func Factory(env Env) nav.Factory {
	return func(s nav.Screen) nav.View {
		switch s {
		case nav.Login:
			return NewLogin(env)
		case nav.Registration:
			return NewRegistration(env)
		case nav.Home:
			return NewHome(env)
		case nav.NewEntry:
			return NewNewEntry(env)
		}
		return nil
	}
}
