package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lumen/internal/activity"
	"github.com/Veraticus/lumen/internal/model"
	"github.com/Veraticus/lumen/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntryListModel renders journal entries as cards, filtered by mode.
type EntryListModel struct {
	theme   themes.Theme
	entries []model.Entry
	visible []int
	mode    model.Mode
	cursor  int
	width   int
	height  int
	focused bool
}

// NewEntryListModel creates a list for the given entries and mode.
func NewEntryListModel(entries []model.Entry, m model.Mode, theme themes.Theme) EntryListModel {
	list := EntryListModel{
		theme:   theme,
		entries: entries,
		mode:    m,
		width:   80,
	}
	list.refilter()
	return list
}

// SetEntries replaces the entries.
func (m *EntryListModel) SetEntries(entries []model.Entry) {
	m.entries = entries
	m.refilter()
}

// Prepend adds a new entry at the top and moves the cursor to it if visible.
func (m *EntryListModel) Prepend(entry model.Entry) {
	m.entries = append([]model.Entry{entry}, m.entries...)
	m.refilter()
	m.cursor = 0
}

// SetMode changes which entries are visible.
func (m *EntryListModel) SetMode(next model.Mode) {
	m.mode = next
	m.refilter()
}

// SetTheme swaps the theme after a marker change.
func (m *EntryListModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetSize sets the render area. A zero height renders every card.
func (m *EntryListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused toggles cursor highlighting.
func (m *EntryListModel) SetFocused(focused bool) {
	m.focused = focused
}

// Visible returns the entries shown in the current mode.
func (m EntryListModel) Visible() []model.Entry {
	out := make([]model.Entry, 0, len(m.visible))
	for _, idx := range m.visible {
		out = append(out, m.entries[idx])
	}
	return out
}

// Selected returns the entry under the cursor.
func (m EntryListModel) Selected() (model.Entry, bool) {
	if len(m.visible) == 0 {
		return model.Entry{}, false
	}
	return m.entries[m.visible[m.cursor]], true
}

func (m *EntryListModel) refilter() {
	visible := make([]int, 0, len(m.entries))
	for i, e := range m.entries {
		if e.VisibleIn(m.mode) {
			visible = append(visible, i)
		}
	}
	m.visible = visible
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// Update moves the cursor.
func (m EntryListModel) Update(msg tea.Msg) (EntryListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.visible) == 0 {
		return m, nil
	}

	prev := m.cursor
	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.visible) - 1
	}

	if m.cursor == prev {
		return m, nil
	}
	entry, index := m.entries[m.visible[m.cursor]], m.cursor
	return m, func() tea.Msg { return EntrySelectedMsg{Entry: entry, Index: index} }
}

// View renders the visible entries.
func (m EntryListModel) View() string {
	if len(m.visible) == 0 {
		empty := "No entries yet."
		if m.mode == model.ModePublic {
			empty = "Nothing has been shared with the group yet."
		}
		return m.theme.Italic.Render(empty)
	}

	cards := make([]string, 0, len(m.visible))
	for i, idx := range m.visible {
		cards = append(cards, m.renderCard(m.entries[idx], m.focused && i == m.cursor))
	}

	header := m.theme.Subtitle.Render(fmt.Sprintf("%d entries · %s", len(m.visible), m.mode.Label()))
	if m.height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, cards...)...)
	}

	// One line is kept for the scroll indicator.
	budget := m.height - lipgloss.Height(header) - 1
	start, end := m.window(cards, budget)

	out := append([]string{header}, cards[start:end]...)
	if above, below := start, len(cards)-end; above > 0 || below > 0 {
		out = append(out, m.theme.Italic.Render(scrollHint(above, below)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// window picks the cards [start, end) that fit in budget lines while keeping
// the cursor visible. The cursor's card is always shown, even if it overflows.
func (m EntryListModel) window(cards []string, budget int) (int, int) {
	heights := make([]int, len(cards))
	for i, c := range cards {
		heights[i] = lipgloss.Height(c)
	}

	start := 0
	used := 0
	for i := 0; i <= m.cursor; i++ {
		used += heights[i]
	}
	for used > budget && start < m.cursor {
		used -= heights[start]
		start++
	}

	end := m.cursor + 1
	for end < len(cards) && used+heights[end] <= budget {
		used += heights[end]
		end++
	}
	return start, end
}

func scrollHint(above, below int) string {
	var parts []string
	if above > 0 {
		parts = append(parts, fmt.Sprintf("↑ %d more", above))
	}
	if below > 0 {
		parts = append(parts, fmt.Sprintf("↓ %d more", below))
	}
	return strings.Join(parts, " · ")
}

func (m EntryListModel) renderCard(entry model.Entry, selected bool) string {
	cfg := activity.Classify(entry.Category)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	head := themes.ActivityBadge(cfg)
	if !entry.CreatedAt.IsZero() {
		head += " " + muted.Render(entry.CreatedAt.Format("Mon Jan 2 15:04"))
	}
	if entry.Mode == model.ModePublic && m.mode == model.ModePersonal {
		head += " " + muted.Render("🌐 shared")
	}

	lines := []string{head, m.theme.Normal.Render(entry.Content)}
	if entry.Category != "" && !activity.IsKnown(entry.Category) {
		lines = append(lines, m.theme.Italic.Render(fmt.Sprintf("unrecognized category %q", entry.Category)))
	}
	if entry.Location != nil {
		lines = append(lines, NewLocationModel(*entry.Location, m.theme).Compact(true).View())
	}

	border := themes.ActivityAccent(cfg)
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(border).
		PaddingLeft(1).
		MarginTop(1)
	if selected {
		style = style.Border(lipgloss.ThickBorder(), false, false, false, true)
	}
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}

	return style.Render(strings.Join(lines, "\n"))
}
