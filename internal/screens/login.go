package screens

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/entries/internal/nav"
)

// LoginModel is the first screen. A valid email and password lead to Home;
// nothing is kept.
type LoginModel struct {
	form credentialsForm
}

func NewLogin(env Env) LoginModel {
	return LoginModel{form: newCredentialsForm(env, env.Msgs.T("LoginTitle"), loginKeys(env))}
}

func (m LoginModel) Screen() nav.Screen { return nav.Login }

func (m LoginModel) Init() tea.Cmd { return textinput.Blink }

func (m LoginModel) Enter(nav.Params) (nav.View, tea.Cmd) {
	m.form.reset()
	return m, textinput.Blink
}

func (m LoginModel) SetSize(width, _ int) nav.View {
	m.form.width = width
	m.form.help.Width = width
	return m
}

// Err is the error currently shown, if any.
func (m LoginModel) Err() string { return m.form.err }

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.form.keys.Submit):
			if !m.form.validate() {
				m.form.env.logger().Info("login rejected")
				return m, nil
			}
			m.form.env.logger().Info("login accepted")
			return m, nav.Navigate(nav.Home, nil)
		case key.Matches(km, m.form.keys.Alt):
			return m, nav.Navigate(nav.Registration, nil)
		}
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m LoginModel) View() string { return m.form.view() }
