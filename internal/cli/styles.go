// Package cli provides styled terminal output for lumen's non-interactive commands.
package cli

import (
	"github.com/Veraticus/lumen/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	// PersonalColor matches the personal theme accent.
	PersonalColor = lipgloss.Color("#A78BFA")
	// PublicColor matches the public theme accent.
	PublicColor = lipgloss.Color("#60A5FA")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// SubtleColor indicates less prominent output.
	SubtleColor = lipgloss.Color("#666666")

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
)

// Icons.
const (
	SuccessIcon  = "✓"
	WarningIcon  = "⚠️"
	PersonalIcon = "🔒"
	PublicIcon   = "🌐"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatMode renders a mode label in its accent color.
func FormatMode(m model.Mode) string {
	icon, color := PersonalIcon, PersonalColor
	if m == model.ModePublic {
		icon, color = PublicIcon, PublicColor
	}
	return icon + " " + lipgloss.NewStyle().Bold(true).Foreground(color).Render(m.Label())
}
