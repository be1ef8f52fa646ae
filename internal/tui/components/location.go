package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lumen/internal/model"
	"github.com/Veraticus/lumen/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// LocationPolicy is how a location kind is presented.
type LocationPolicy struct {
	Icon  string
	Label string
}

// PolicyFor maps a location kind to its presentation. Unknown kinds use the live policy.
func PolicyFor(kind model.LocationKind) LocationPolicy {
	switch kind {
	case model.LocationCheckIn:
		return LocationPolicy{Icon: "✅", Label: "Checked in"}
	case model.LocationLive:
		return LocationPolicy{Icon: "📍", Label: "Live location"}
	default:
		return LocationPolicy{Icon: "📍", Label: "Live location"}
	}
}

// LocationModel renders a single location record.
type LocationModel struct {
	theme    themes.Theme
	location model.Location
	compact  bool
}

// NewLocationModel creates a location view.
func NewLocationModel(location model.Location, theme themes.Theme) LocationModel {
	return LocationModel{
		location: location,
		theme:    theme,
	}
}

// Compact renders a single line instead of the detailed block.
func (m LocationModel) Compact(compact bool) LocationModel {
	m.compact = compact
	return m
}

// Coordinates formats latitude and longitude to four decimals.
func (m LocationModel) Coordinates() string {
	return fmt.Sprintf("%.4f, %.4f", m.location.Latitude, m.location.Longitude)
}

// View renders the location.
func (m LocationModel) View() string {
	policy := PolicyFor(m.location.Kind)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	headline := policy.Icon + " " + policy.Label
	if m.location.Name != "" {
		headline += " · " + m.theme.Bold.Render(m.location.Name)
	}

	if m.compact {
		return headline + " " + muted.Render("("+m.Coordinates()+")")
	}

	lines := []string{headline}
	if m.location.Address != "" {
		lines = append(lines, muted.Render(m.location.Address))
	}

	meta := m.Coordinates()
	if !m.location.Timestamp.IsZero() {
		meta += " · " + m.location.Timestamp.Format("Jan 2 15:04")
	}
	lines = append(lines, muted.Render(meta))

	return strings.Join(lines, "\n")
}
