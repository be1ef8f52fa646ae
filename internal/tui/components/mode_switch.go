package components

import (
	"context"
	"strings"

	"github.com/Veraticus/lumen/internal/mode"
	"github.com/Veraticus/lumen/internal/model"
	"github.com/Veraticus/lumen/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModeSwitchModel is the personal/public toggle in the header.
type ModeSwitchModel struct {
	ctx   context.Context
	store *mode.Store
	theme themes.Theme
}

// NewModeSwitchModel creates the toggle. The store must come from mode.FromContext(ctx).
func NewModeSwitchModel(ctx context.Context, theme themes.Theme) ModeSwitchModel {
	return ModeSwitchModel{
		ctx:   ctx,
		store: mode.FromContext(ctx),
		theme: theme,
	}
}

// Update toggles the mode on m or space; p and P select a mode directly.
func (m ModeSwitchModel) Update(msg tea.Msg) (ModeSwitchModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "m", " ":
		return m, m.toggle()
	case "p":
		return m, m.set(model.ModePersonal)
	case "P":
		return m, m.set(model.ModePublic)
	}
	return m, nil
}

func (m ModeSwitchModel) toggle() tea.Cmd {
	next := m.store.Toggle(m.ctx)
	return func() tea.Msg { return ModeChangedMsg{Mode: next} }
}

func (m ModeSwitchModel) set(next model.Mode) tea.Cmd {
	if m.store.Mode() == next {
		return nil
	}
	if err := m.store.SetMode(m.ctx, next); err != nil {
		return nil
	}
	return func() tea.Msg { return ModeChangedMsg{Mode: next} }
}

// SetTheme swaps the theme after a marker change.
func (m *ModeSwitchModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Mode returns the mode currently shown.
func (m ModeSwitchModel) Mode() model.Mode {
	return m.store.Mode()
}

// View renders both options with the active one highlighted.
func (m ModeSwitchModel) View() string {
	current := m.store.Mode()
	inactive := lipgloss.NewStyle().Foreground(m.theme.Muted).Padding(0, 1)

	parts := make([]string, 0, len(model.Modes()))
	for _, candidate := range model.Modes() {
		label := modeIcon(candidate) + " " + candidate.Label()
		if candidate == current {
			parts = append(parts, m.theme.Selected.Render(label))
			continue
		}
		parts = append(parts, inactive.Render(label))
	}

	view := strings.Join(parts, " ")
	if !m.store.Persistent() {
		view += " " + m.theme.StatusWarning.Render("(not saved)")
	}
	return view
}

func modeIcon(m model.Mode) string {
	if m == model.ModePublic {
		return "🌐"
	}
	return "🔒"
}
