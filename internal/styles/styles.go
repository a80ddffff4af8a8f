// Package styles holds the terminal styling used by the popdb CLI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Primary    = lipgloss.Color("#7D56F4") // Purple
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	TextDim    = lipgloss.Color("#A8A8A8") // Dim
)

var (
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Label renders text in the bold primary color used for keys and headings.
func Label(text string) string {
	return LabelStyle.Render(text)
}

// Dim renders secondary text such as placeholders.
func Dim(text string) string {
	return DimStyle.Render(text)
}

// Error renders a one-line error message for stderr.
func Error(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

// KeyValue renders "key: value" with the key highlighted.
func KeyValue(key, value string) string {
	return Label(key+":") + " " + value
}

// Success renders a check-marked completion message.
func Success(text string) string {
	return LabelStyle.Render("✓ " + text)
}
