package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the Lipgloss styles for the viewer.
type Styles struct {
	StatusBar   lipgloss.Style
	StatusPath  lipgloss.Style
	StatusState lipgloss.Style
	StatusFaint lipgloss.Style
	StatusError lipgloss.Style
}

// DefaultStyles returns the default viewer styles.
func DefaultStyles() Styles {
	return Styles{
		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")),

		StatusPath: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("75")).
			Bold(true),

		StatusState: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("114")),

		StatusFaint: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("244")),

		StatusError: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("203")).
			Bold(true),
	}
}
