package components

import (
	"strings"
	"time"

	"github.com/Veraticus/lumen/internal/activity"
	"github.com/Veraticus/lumen/internal/model"
	"github.com/Veraticus/lumen/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const (
	personalPlaceholder = "What's on your mind? Only you will see this."
	publicPlaceholder   = "Share something with the group..."
)

// EntryEditorModel is the text input plus category picker for new entries.
type EntryEditorModel struct {
	now      func() time.Time
	theme    themes.Theme
	input    textarea.Model
	status   string
	options  []activity.Option
	location *model.Location
	mode     model.Mode
	selected int
	width    int
}

// NewEntryEditorModel creates an editor for the given mode.
func NewEntryEditorModel(m model.Mode, theme themes.Theme) EntryEditorModel {
	input := textarea.New()
	input.ShowLineNumbers = false
	input.CharLimit = 2000
	input.SetHeight(4)
	input.SetWidth(60)

	editor := EntryEditorModel{
		now:     time.Now,
		theme:   theme,
		input:   input,
		options: activity.Options(),
		width:   60,
	}
	editor.SetMode(m)
	return editor
}

// WithClock overrides the timestamp source for new entries.
func (m EntryEditorModel) WithClock(now func() time.Time) EntryEditorModel {
	m.now = now
	return m
}

// SetMode restyles the editor for m.
func (m *EntryEditorModel) SetMode(next model.Mode) {
	m.mode = next
	if next == model.ModePublic {
		m.input.Placeholder = publicPlaceholder
	} else {
		m.input.Placeholder = personalPlaceholder
	}
}

// SetTheme swaps the theme after a marker change.
func (m *EntryEditorModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetLocation attaches a location to the next submitted entry.
func (m *EntryEditorModel) SetLocation(loc *model.Location) {
	m.location = loc
}

// Location returns the location the next entry will carry, if any.
func (m EntryEditorModel) Location() *model.Location {
	return m.location
}

// SetWidth resizes the text area.
func (m *EntryEditorModel) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	m.width = width
	m.input.SetWidth(width - 4)
}

// Focus focuses the text area.
func (m *EntryEditorModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus.
func (m *EntryEditorModel) Blur() {
	m.input.Blur()
}

// Focused reports whether the editor has focus.
func (m EntryEditorModel) Focused() bool {
	return m.input.Focused()
}

// Category returns the currently selected category.
func (m EntryEditorModel) Category() activity.Option {
	return m.options[m.selected]
}

// SelectCategory moves the picker to value. Unknown values select note.
func (m *EntryEditorModel) SelectCategory(value string) {
	target := activity.Classify(value).Type
	for i, opt := range m.options {
		if opt.Value == target {
			m.selected = i
			return
		}
	}
}

// Value returns the current text.
func (m EntryEditorModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the current text.
func (m *EntryEditorModel) SetValue(s string) {
	m.input.SetValue(s)
}

// Update handles editor keys; everything else goes to the text area.
func (m EntryEditorModel) Update(msg tea.Msg) (EntryEditorModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.input.Focused() {
		switch keyMsg.String() {
		case "ctrl+g":
			m.selected = (m.selected + 1) % len(m.options)
			return m, nil
		case "ctrl+s":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m EntryEditorModel) submit() (EntryEditorModel, tea.Cmd) {
	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		m.status = "Entry is empty"
		return m, nil
	}

	entry := model.Entry{
		ID:        uuid.NewString(),
		Content:   content,
		Category:  string(m.Category().Value),
		Mode:      m.mode,
		Location:  m.location,
		CreatedAt: m.now(),
	}

	m.input.Reset()
	m.location = nil
	m.status = "Saved " + m.Category().Label
	return m, func() tea.Msg { return EntrySubmittedMsg{Entry: entry} }
}

// View renders the category picker above the text area.
func (m EntryEditorModel) View() string {
	picker := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		label := opt.Icon + " " + opt.Label
		if i == m.selected {
			picker = append(picker, themes.ActivityBadge(activity.Lookup(opt.Value)))
			continue
		}
		picker = append(picker, lipgloss.NewStyle().Foreground(m.theme.Muted).Padding(0, 1).Render(label))
	}

	border := m.theme.Border
	if m.input.Focused() {
		border = m.theme.Primary
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, picker...),
		m.input.View(),
	}
	if m.location != nil {
		sections = append(sections, NewLocationModel(*m.location, m.theme).Compact(true).View())
	}
	if m.status != "" {
		sections = append(sections, m.theme.Italic.Render(m.status))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
