package ui

import "github.com/charmbracelet/lipgloss"

// Panel frames content in the theme border. A width of 0 sizes to content.
func (t Theme) Panel(content string, width int) string {
	box := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if width > 0 {
		// Width excludes the border but includes padding.
		box = box.Width(width - 2)
	}
	return box.Render(content)
}
