package screens

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/entries/internal/model"
	"github.com/idilsaglam/entries/internal/nav"
	"github.com/idilsaglam/entries/internal/ui"
)

// entryItem adapts model.Entry to bubbles/list.Item
type entryItem struct {
	entry model.Entry
}

// Implement list.Item interface
func (i entryItem) Title() string       { return i.entry.Title }
func (i entryItem) Description() string { return "" }
func (i entryItem) FilterValue() string { return i.entry.Title }

// Custom delegate to control how entries render (single line)
type entryDelegate struct {
	theme ui.Theme
}

func (d entryDelegate) Height() int                               { return 1 }
func (d entryDelegate) Spacing() int                              { return 0 }
func (d entryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	prefix := "  "
	text := d.theme.Label.Render(it.entry.Title)
	if index == m.Index() {
		prefix = d.theme.Selected.Render(d.theme.Cursor)
		text = d.theme.Selected.Render(it.entry.Title)
	}
	fmt.Fprintln(w, prefix+d.theme.Accent.Render(d.theme.Bullet)+" "+text)
}

// HomeModel lists the entries created during this mount, oldest first.
type HomeModel struct {
	env     Env
	keys    homeKeys
	list    list.Model
	entries []model.Entry
	width   int
}

func NewHome(env Env) HomeModel {
	keys := newHomeKeys(env)

	l := list.New(nil, entryDelegate{theme: env.Theme}, 0, 0)
	l.Title = env.Msgs.T("HomeTitle")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = env.Theme.Title
	l.Styles.HelpStyle = env.Theme.Help
	l.Styles.PaginationStyle = env.Theme.Help
	l.Styles.NoItems = env.Theme.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName(env.Msgs.T("EntryItemSingular"), env.Msgs.T("EntryItemPlural"))
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.New, keys.Quit} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{keys.New, keys.Quit} }

	return HomeModel{env: env, keys: keys, list: l}
}

func (m HomeModel) Screen() nav.Screen { return nav.Home }

func (m HomeModel) Init() tea.Cmd { return nil }

// Enter appends an entry when the transition carries a title.
func (m HomeModel) Enter(params nav.Params) (nav.View, tea.Cmd) {
	title := params[nav.ParamTitle]
	if title == "" {
		return m, nil
	}
	return m.add(title)
}

func (m HomeModel) add(title string) (HomeModel, tea.Cmd) {
	e := model.NewEntry(title, "")
	m.entries = append(m.entries, e)
	cmd := m.list.InsertItem(len(m.list.Items()), entryItem{entry: e})
	m.env.logger().Debug("entry added", "id", e.ID, "count", len(m.entries))
	return m, cmd
}

// Entries returns the list in insertion order.
func (m HomeModel) Entries() []model.Entry {
	out := make([]model.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m HomeModel) SetSize(width, height int) nav.View {
	m.width = width
	m.list.SetSize(max(0, width-4), max(0, height-2))
	return m
}

func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// While the filter prompt has focus every key is filter text.
	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, m.keys.New):
			return m, nav.Navigate(nav.NewEntry, nil)
		case key.Matches(km, m.keys.Quit) && m.list.FilterState() == list.Unfiltered:
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m HomeModel) View() string {
	content := m.list.View()
	if len(m.entries) == 0 {
		content = m.env.Theme.Title.Render(m.env.Msgs.T("HomeTitle")) + "\n\n" +
			m.env.Theme.Muted.Render(m.env.Msgs.T("EmptyEntries")) + "\n\n" +
			m.env.Theme.Help.Render(m.keys.New.Help().Key+" "+m.keys.New.Help().Desc+" • "+
				m.keys.Quit.Help().Key+" "+m.keys.Quit.Help().Desc)
	}
	return m.env.Theme.Panel(content, m.width)
}
