package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) for section titles, readable on any terminal
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// SourceStyle ANSI 2 (Green) for source citations
	SourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// MetaStyle ANSI 8 (Bright Black / Gray) for secondary detail lines
	MetaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags in command help
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// Confidence badges follow a traffic-light scale.
	ConfidenceHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	ConfidenceMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	ConfidenceLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// ConfidenceStyle picks a badge style for a confidence score.
func ConfidenceStyle(score float64) lipgloss.Style {
	switch {
	case score > 0.8:
		return ConfidenceHigh
	case score > 0.6:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
