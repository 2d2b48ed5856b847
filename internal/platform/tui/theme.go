package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles of the status and help lines.
type Theme struct {
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDPaused    lipgloss.Style
	HUDNotice    lipgloss.Style
}

// NewTheme builds the default theme for a renderer. SSH sessions pass the
// session renderer so colors match the remote terminal. A nil renderer uses
// the default one.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		HUDTitle:     r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Warm orange
		HUDValue:     r.NewStyle().Foreground(lipgloss.Color("255")),
		HUDLabel:     r.NewStyle().Foreground(lipgloss.Color("245")),
		HUDSeparator: r.NewStyle().Foreground(lipgloss.Color("240")),
		HUDPaused:    r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HUDNotice:    r.NewStyle().Foreground(lipgloss.Color("114")),
	}
}
