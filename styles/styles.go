// Package styles holds the terminal colours used for user-facing output.
package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro palette
const (
	Background = "#2D2A2E"
	Red        = "#FF6188" // errors
	Yellow     = "#FFD866" // selection
	Green      = "#A9DC76" // success
	Magenta    = "#FF6188" // titles
	Comment    = "#727072" // dim text, help
	Border     = "#5B595C"
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(Border))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Yellow))
)
