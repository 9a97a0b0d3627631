// Package tui provides the theme and keybindings for the picker CLI.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors for the TUI theme.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorBorder  = lipgloss.Color("#374151") // Dark gray
)

// Styles for common TUI elements.
var (
	// Title style for the session header
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// Box style for the session frame
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// Muted text style
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// Current pick style
	PickStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Already-revealed pick style
	PickedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))
)
