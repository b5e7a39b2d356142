// Package display renders a classified item stream for terminal output.
// This file defines lipgloss styles for consistent terminal output.
package display

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles used for stream rendering.
type Styles struct {
	// Label is the style for item kind labels (bold).
	Label lipgloss.Style

	// Flag is the style for flag names (cyan).
	Flag lipgloss.Style

	// Word is the style for bare words.
	Word lipgloss.Style

	// Value is the style for claimed parameter values (yellow).
	Value lipgloss.Style
}

// DefaultStyles returns the standard styles for stream output.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().Bold(true),
		Flag:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Word:  lipgloss.NewStyle(),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
	}
}
