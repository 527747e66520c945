// Package ui provides the styled terminal output for the fidget binary:
// the startup banner and fatal error rendering.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used for terminal output
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents the collection of styles used for output
type Style struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Box   lipgloss.Style
	Error lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	return Style{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Highlight),

		Label: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		Value: lipgloss.NewStyle().
			Foreground(defaultColors.Special),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Error),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
