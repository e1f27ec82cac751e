package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/entries/internal/auth"
	"github.com/idilsaglam/entries/internal/model"
	"github.com/idilsaglam/entries/internal/nav"
)

const (
	fieldTitle = iota
	fieldBody
)

// NewEntryModel collects a title and body. Only the title travels back to
// Home; the body is dropped on save.
type NewEntryModel struct {
	env   Env
	keys  formKeys
	help  help.Model
	title textinput.Model
	body  textarea.Model
	focus int
	err   string
	width int
}

func NewNewEntry(env Env) NewEntryModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = env.Msgs.T("TitlePlaceholder")
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = env.Msgs.T("BodyPlaceholder")
	ta.ShowLineNumbers = false
	ta.SetHeight(6)

	m := NewEntryModel{
		env:   env,
		keys:  newEntryKeys(env),
		help:  help.New(),
		title: ti,
		body:  ta,
	}
	m.help.Styles.ShortKey = env.Theme.Help
	m.help.Styles.ShortDesc = env.Theme.Help
	m.reset()
	return m
}

func (m *NewEntryModel) reset() {
	m.title.SetValue("")
	m.body.Reset()
	m.err = ""
	m.setFocus(fieldTitle)
}

func (m *NewEntryModel) setFocus(i int) {
	m.focus = i
	if i == fieldTitle {
		m.title.Focus()
		m.body.Blur()
	} else {
		m.body.Focus()
		m.title.Blur()
	}
}

func (m NewEntryModel) Screen() nav.Screen { return nav.NewEntry }

func (m NewEntryModel) Init() tea.Cmd { return textinput.Blink }

func (m NewEntryModel) Enter(nav.Params) (nav.View, tea.Cmd) {
	m.reset()
	return m, textinput.Blink
}

func (m NewEntryModel) SetSize(width, _ int) nav.View {
	m.width = width
	m.help.Width = width
	if width > 8 {
		m.body.SetWidth(width - 8)
	}
	return m
}

// Err is the error currently shown, if any.
func (m NewEntryModel) Err() string { return m.err }

// Entry is what the form would save right now.
func (m NewEntryModel) Entry() model.Entry {
	return model.Entry{Title: m.title.Value(), Body: m.body.Value()}
}

func (m NewEntryModel) save() (NewEntryModel, tea.Cmd) {
	e := m.Entry()
	if err := auth.ValidateTitle(e.Title); err != nil {
		m.err = m.env.errorText(err)
		m.env.logger().Debug("entry rejected", "reason", err)
		return m, nil
	}
	m.err = ""
	return m, nav.Navigate(nav.Home, nav.Params{nav.ParamTitle: e.Title})
}

func (m NewEntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Submit):
			return m.save()
		case km.Type == tea.KeyEnter && m.focus == fieldTitle:
			return m.save()
		case key.Matches(km, m.keys.Alt):
			return m, nav.Navigate(nav.Home, nil)
		case key.Matches(km, m.keys.Next), key.Matches(km, m.keys.Prev):
			m.setFocus(1 - m.focus)
			return m, nil
		}
	}
	var cmd tea.Cmd
	if m.focus == fieldTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m NewEntryModel) View() string {
	t := m.env.Theme
	var b strings.Builder
	b.WriteString(t.Title.Render(m.env.Msgs.T("NewEntryTitle")))
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render(m.env.Msgs.T("TitleLabel")))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render(m.env.Msgs.T("BodyLabel")))
	b.WriteString("\n")
	b.WriteString(m.body.View())
	b.WriteString("\n\n")
	if m.err != "" {
		b.WriteString(t.Error.Render(m.err))
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.View(m.keys))
	return t.Panel(b.String(), m.width)
}
