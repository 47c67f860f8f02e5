package calcview

import "github.com/charmbracelet/lipgloss"

// Style controls the calculator's rendering.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
	Output    lipgloss.Style
	Status    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle().Bold(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Output:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}
