package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the search screen.
type Styles struct {
	Title      lipgloss.Style
	Word       lipgloss.Style
	Selected   lipgloss.Style
	IPA        lipgloss.Style
	Definition lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the default theme.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		Word: lipgloss.NewStyle().
			Bold(true),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		IPA: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Definition: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}
