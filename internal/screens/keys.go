package screens

import "github.com/charmbracelet/bubbles/key"

// formKeys drive the login, registration and new entry forms.
type formKeys struct {
	Submit key.Binding
	Alt    key.Binding // register on login, cancel elsewhere
	Next   key.Binding
	Prev   key.Binding
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Alt, k.Next}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Alt}, {k.Next, k.Prev}}
}

func focusKeys(env Env) (next, prev key.Binding) {
	next = key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", env.Msgs.T("HelpNextField")))
	prev = key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", env.Msgs.T("HelpPrevField")))
	return next, prev
}

func loginKeys(env Env) formKeys {
	next, prev := focusKeys(env)
	return formKeys{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", env.Msgs.T("HelpLogIn"))),
		Alt:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", env.Msgs.T("HelpRegister"))),
		Next:   next,
		Prev:   prev,
	}
}

func registrationKeys(env Env) formKeys {
	next, prev := focusKeys(env)
	return formKeys{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", env.Msgs.T("HelpRegister"))),
		Alt:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", env.Msgs.T("HelpCancel"))),
		Next:   next,
		Prev:   prev,
	}
}

func newEntryKeys(env Env) formKeys {
	return formKeys{
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", env.Msgs.T("HelpSave"))),
		Alt:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", env.Msgs.T("HelpCancel"))),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", env.Msgs.T("HelpNextField"))),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", env.Msgs.T("HelpPrevField"))),
	}
}

type homeKeys struct {
	New  key.Binding
	Quit key.Binding
}

func newHomeKeys(env Env) homeKeys {
	return homeKeys{
		New:  key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", env.Msgs.T("HelpNewEntry"))),
		Quit: key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", env.Msgs.T("HelpQuit"))),
	}
}
