// Package nav is the navigation stack the screens run on.
//
// Screens never reach into each other. A screen asks to move by returning the
// command from Navigate; the root model feeds the resulting NavigateMsg to a
// Navigator, which either pops back to a mounted instance of the target or
// pushes a fresh one, then hands it the transition params through Enter.
// Params are delivered once per transition and never replayed.
package nav

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a type-safe identifier for screens.
type Screen int

const (
	Login Screen = iota
	Registration
	Home
	NewEntry
)

func (s Screen) String() string {
	switch s {
	case Login:
		return "Login"
	case Registration:
		return "Registration"
	case Home:
		return "Home"
	case NewEntry:
		return "NewEntry"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// Params carries values from one screen to the next.
type Params map[string]string

// ParamTitle is the new entry title handed from NewEntry back to Home.
const ParamTitle = "title"

// NavigateMsg asks the root model to move to another screen.
type NavigateMsg struct {
	To     Screen
	Params Params
}

// Navigate returns a command that requests a transition.
func Navigate(to Screen, params Params) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{To: to, Params: params}
	}
}

// View is a mounted screen.
type View interface {
	tea.Model

	// Screen identifies the view.
	Screen() Screen

	// Enter is called each time the view becomes the top of the stack,
	// with the params of that transition (nil when there are none).
	Enter(params Params) (View, tea.Cmd)

	// SetSize propagates the terminal size.
	SetSize(width, height int) View
}

// Factory mounts a fresh view for a screen.
type Factory func(Screen) View
