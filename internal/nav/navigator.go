package nav

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigator owns the stack and applies transitions.
type Navigator struct {
	stack   *Stack
	factory Factory

	width, height int
}

// NewNavigator creates a navigator that mounts screens with factory.
func NewNavigator(factory Factory) *Navigator {
	return &Navigator{
		stack:   NewStack(),
		factory: factory,
	}
}

// Navigate makes to the top of the stack. A mounted instance is reused,
// dropping everything above it; otherwise a fresh view is pushed.
func (n *Navigator) Navigate(to Screen, params Params) (tea.Cmd, error) {
	if !n.stack.PopTo(to) {
		v := n.factory(to)
		if v == nil {
			return nil, fmt.Errorf("nav: no view for screen %s", to)
		}
		if n.width > 0 || n.height > 0 {
			v = v.SetSize(n.width, n.height)
		}
		n.stack.Push(v)
	}
	next, cmd := n.stack.Top().Enter(params)
	n.stack.ReplaceTop(next)
	return cmd, nil
}

// Current returns the view on top of the stack, or nil before the first Navigate.
func (n *Navigator) Current() View {
	return n.stack.Top()
}

// Update routes msg to the current view.
func (n *Navigator) Update(msg tea.Msg) tea.Cmd {
	if n.stack.IsEmpty() {
		return nil
	}
	next, cmd := n.stack.Top().Update(msg)
	if v, ok := next.(View); ok {
		n.stack.ReplaceTop(v)
	}
	return cmd
}

// Resize records the terminal size and passes it to every mounted view.
func (n *Navigator) Resize(width, height int) {
	n.width, n.height = width, height
	n.stack.Each(func(v View) View { return v.SetSize(width, height) })
}

// Screens lists the mounted screens, bottom first.
func (n *Navigator) Screens() []Screen {
	return n.stack.Screens()
}
