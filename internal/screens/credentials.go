package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/entries/internal/auth"
	"github.com/idilsaglam/entries/internal/model"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldCount
)

// credentialsForm is the email/password form shared by login and registration.
type credentialsForm struct {
	env   Env
	title string
	keys  formKeys
	help  help.Model

	email    textinput.Model
	password textinput.Model
	focus    int
	err      string
	width    int
}

func newCredentialsForm(env Env, title string, keys formKeys) credentialsForm {
	email := textinput.New()
	email.Prompt = "> "
	email.Placeholder = env.Msgs.T("EmailPlaceholder")
	email.CharLimit = 254

	password := textinput.New()
	password.Prompt = "> "
	password.Placeholder = env.Msgs.T("PasswordPlaceholder")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	f := credentialsForm{
		env:      env,
		title:    title,
		keys:     keys,
		help:     help.New(),
		email:    email,
		password: password,
	}
	f.help.Styles.ShortKey = env.Theme.Help
	f.help.Styles.ShortDesc = env.Theme.Help
	f.reset()
	return f
}

// reset clears inputs and error, as on a fresh mount.
func (f *credentialsForm) reset() {
	f.email.SetValue("")
	f.password.SetValue("")
	f.err = ""
	f.setFocus(fieldEmail)
}

func (f *credentialsForm) setFocus(i int) {
	f.focus = (i + fieldCount) % fieldCount
	if f.focus == fieldEmail {
		f.email.Focus()
		f.password.Blur()
	} else {
		f.password.Focus()
		f.email.Blur()
	}
}

func (f credentialsForm) credentials() model.Credentials {
	return model.Credentials{Email: f.email.Value(), Password: f.password.Value()}
}

// validate runs the credential check and records the error text on failure.
func (f *credentialsForm) validate() bool {
	c := f.credentials()
	if err := auth.ValidateCredentials(c.Email, c.Password); err != nil {
		f.err = f.env.errorText(err)
		return false
	}
	f.err = ""
	return true
}

// update handles focus movement and forwards everything else to the
// focused input. Submit and Alt are left to the owning screen.
func (f credentialsForm) update(msg tea.Msg) (credentialsForm, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Next):
			f.setFocus(f.focus + 1)
			return f, textinput.Blink
		case key.Matches(km, f.keys.Prev):
			f.setFocus(f.focus - 1)
			return f, textinput.Blink
		}
	}
	var cmd tea.Cmd
	if f.focus == fieldEmail {
		f.email, cmd = f.email.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd
}

func (f credentialsForm) view() string {
	t := f.env.Theme
	var b strings.Builder
	b.WriteString(t.Title.Render(f.title))
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render(f.env.Msgs.T("EmailLabel")))
	b.WriteString("\n")
	b.WriteString(f.email.View())
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render(f.env.Msgs.T("PasswordLabel")))
	b.WriteString("\n")
	b.WriteString(f.password.View())
	b.WriteString("\n\n")
	if f.err != "" {
		b.WriteString(t.Error.Render(f.err))
		b.WriteString("\n\n")
	}
	b.WriteString(f.help.View(f.keys))
	return t.Panel(b.String(), f.width)
}
