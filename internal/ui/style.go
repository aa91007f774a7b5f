// Package ui provides the terminal user interface for timecalc.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
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

// Style represents a collection of styles used in the application
type Style struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Label       lipgloss.Style
	ActiveLabel lipgloss.Style
	InputText   lipgloss.Style
	Placeholder lipgloss.Style
	Chip        lipgloss.Style
	ResultBox   lipgloss.Style
	ResultLabel lipgloss.Style
	ResultMain  lipgloss.Style
	ResultSub   lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Tab: base.
			Foreground(defaultColors.Subtle),

		ActiveTab: base.
			Bold(true).
			Underline(true).
			Foreground(defaultColors.Highlight),

		Label: base.
			Width(14).
			Foreground(defaultColors.Subtle),

		ActiveLabel: base.
			Width(14).
			Bold(true).
			Foreground(defaultColors.Highlight),

		InputText: lipgloss.NewStyle(),

		Placeholder: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		Chip: base.
			Foreground(defaultColors.Special),

		ResultBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 2),

		ResultLabel: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		ResultMain: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Special),

		ResultSub: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			Foreground(defaultColors.Error),

		Status: base.
			Italic(true).
			Foreground(defaultColors.Special),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
