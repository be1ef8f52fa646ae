// Package themes holds lumen's lipgloss themes and the presentation context
// whose markers select between them.
package themes

import (
	"github.com/Veraticus/lumen/internal/activity"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Selected      lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

type palette struct {
	primary    string
	secondary  string
	muted      string
	border     string
	foreground string
	subtle     string
	background string
	surface    string
	err        string
	warning    string
	success    string
	info       string
}

func newTheme(name string, p palette) Theme {
	return Theme{
		Name:       name,
		Primary:    lipgloss.Color(p.primary),
		Secondary:  lipgloss.Color(p.secondary),
		Muted:      lipgloss.Color(p.muted),
		Border:     lipgloss.Color(p.border),
		Foreground: lipgloss.Color(p.foreground),
		Background: lipgloss.Color(p.background),
		Error:      lipgloss.Color(p.err),
		Warning:    lipgloss.Color(p.warning),
		Success:    lipgloss.Color(p.success),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.foreground)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.foreground)),
		Italic: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(p.muted)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color(p.background)).
			Bold(true).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Padding(0, 1),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.primary)).
			Background(lipgloss.Color(p.surface)).
			Padding(0, 1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.err)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
	}
}

// Personal themes use violet accents, public themes blue.
var (
	DefaultPersonal = newTheme("default", palette{
		primary: "#7c3aed", secondary: "#a78bfa", muted: "#737373", border: "#404040",
		foreground: "#fafafa", subtle: "#a3a3a3", background: "#1a1a1a", surface: "#1f1b2e",
		err: "#ef4444", warning: "#f59e0b", success: "#10b981", info: "#8b5cf6",
	})
	DefaultPublic = newTheme("default", palette{
		primary: "#2563eb", secondary: "#60a5fa", muted: "#737373", border: "#404040",
		foreground: "#fafafa", subtle: "#a3a3a3", background: "#1a1a1a", surface: "#172036",
		err: "#ef4444", warning: "#f59e0b", success: "#10b981", info: "#3b82f6",
	})
	MochaPersonal = newTheme("catppuccin-mocha", palette{
		primary: "#cba6f7", secondary: "#f5c2e7", muted: "#6c7086", border: "#45475a",
		foreground: "#cdd6f4", subtle: "#a6adc8", background: "#1e1e2e", surface: "#313244",
		err: "#f38ba8", warning: "#f9e2af", success: "#a6e3a1", info: "#cba6f7",
	})
	MochaPublic = newTheme("catppuccin-mocha", palette{
		primary: "#89b4fa", secondary: "#74c7ec", muted: "#6c7086", border: "#45475a",
		foreground: "#cdd6f4", subtle: "#a6adc8", background: "#1e1e2e", surface: "#313244",
		err: "#f38ba8", warning: "#f9e2af", success: "#a6e3a1", info: "#89dceb",
	})
)

// Names lists the configurable theme names.
func Names() []string {
	return []string{"default", "catppuccin-mocha"}
}

// GetTheme returns the named theme for a personal or public session.
// Unknown names fall back to the default theme.
func GetTheme(name string, public bool) Theme {
	switch name {
	case "catppuccin-mocha":
		if public {
			return MochaPublic
		}
		return MochaPersonal
	default:
		if public {
			return DefaultPublic
		}
		return DefaultPersonal
	}
}

// ActivityStyle turns an activity's color tokens into a badge style.
func ActivityStyle(cfg activity.Config) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(cfg.TextColor)).
		Background(lipgloss.Color(cfg.Background)).
		Padding(0, 1)
}

// ActivityBadge renders "icon label" in the activity's colors.
func ActivityBadge(cfg activity.Config) string {
	return ActivityStyle(cfg).Render(cfg.Icon + " " + cfg.Label)
}

// ActivityAccent is the border color entry cards use for an activity.
func ActivityAccent(cfg activity.Config) lipgloss.Color {
	return lipgloss.Color(cfg.Color)
}
