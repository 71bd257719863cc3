package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title lipgloss.Style
	Help  lipgloss.Style
	Error lipgloss.Style
	Card  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true),
		Help:  lipgloss.NewStyle().Faint(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
