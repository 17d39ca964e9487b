// Package tui renders a console session in the terminal using bubbletea.
// It is presentation glue only: every behavior lives in internal/console.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the console window.
type Styles struct {
	Frame      lipgloss.Style
	Scrollback lipgloss.Style
	Separator  lipgloss.Style
	Prompt     lipgloss.Style
}

// DefaultStyles returns the default console look: a rounded frame, dim
// separator and a highlighted prompt.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Scrollback: lipgloss.NewStyle(),
		Separator:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	}
}
