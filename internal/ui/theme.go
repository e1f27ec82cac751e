package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Label, Muted, Accent, Success, Error, Selected, Help lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	Bullet, Cursor, SymOK, SymFail string
}

var current = ThemeByName("classic")

// ThemeByName returns one of the built-in themes. Unknown names fall back to classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Label:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Help:        lipgloss.NewStyle().Faint(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			Bullet:      "◆",
			Cursor:      "▸ ",
			SymOK:       "✔",
			SymFail:     "✖",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:        "mono",
			Title:       plain.Bold(true),
			Label:       plain,
			Muted:       plain,
			Accent:      plain,
			Success:     plain,
			Error:       plain,
			Selected:    plain.Reverse(true),
			Help:        plain,
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			Bullet:      "-",
			Cursor:      "> ",
			SymOK:       "ok",
			SymFail:     "error:",
		}
	default: // classic, the entries palette
		return Theme{
			Name:        "classic",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#706993")),
			Label:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#706993")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("#A0C1B9")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A0C1B9")),
			Help:        lipgloss.NewStyle().Faint(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("#BEBBC6"),
			Bullet:      "•",
			Cursor:      "> ",
			SymOK:       "✔",
			SymFail:     "✖",
		}
	}
}

// SetTheme switches the theme used by the package-level helpers.
func SetTheme(name string) { current = ThemeByName(name) }

// Current returns the active theme.
func Current() Theme { return current }
