package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Streak   lipgloss.Style
	Faint    lipgloss.Style
	Error    lipgloss.Style
	Modal    lipgloss.Style
	Footer   lipgloss.Style
	FieldKey lipgloss.Style
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Streak:   lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		Modal:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(1, 2),
		Footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		FieldKey: lipgloss.NewStyle().Bold(true),
	}
}
