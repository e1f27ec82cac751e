package screens

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/entries/internal/nav"
)

// RegistrationModel runs the same check as login and returns to Login on
// success. No account is created.
type RegistrationModel struct {
	form credentialsForm
}

func NewRegistration(env Env) RegistrationModel {
	return RegistrationModel{form: newCredentialsForm(env, env.Msgs.T("RegistrationTitle"), registrationKeys(env))}
}

func (m RegistrationModel) Screen() nav.Screen { return nav.Registration }

func (m RegistrationModel) Init() tea.Cmd { return textinput.Blink }

func (m RegistrationModel) Enter(nav.Params) (nav.View, tea.Cmd) {
	m.form.reset()
	return m, textinput.Blink
}

func (m RegistrationModel) SetSize(width, _ int) nav.View {
	m.form.width = width
	m.form.help.Width = width
	return m
}

// Err is the error currently shown, if any.
func (m RegistrationModel) Err() string { return m.form.err }

func (m RegistrationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.form.keys.Submit):
			if !m.form.validate() {
				m.form.env.logger().Info("registration rejected")
				return m, nil
			}
			m.form.env.logger().Info("registration accepted")
			return m, nav.Navigate(nav.Login, nil)
		case key.Matches(km, m.form.keys.Alt):
			return m, nav.Navigate(nav.Login, nil)
		}
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m RegistrationModel) View() string { return m.form.view() }
