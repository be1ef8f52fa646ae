package tui

import (
	"context"
	"errors"

	"github.com/Veraticus/lumen/internal/mode"
	"github.com/Veraticus/lumen/internal/tui/components"
	"github.com/Veraticus/lumen/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focus is the pane receiving key input.
type Focus int

const (
	FocusList Focus = iota
	FocusEditor
)

const minListHeight = 6

// ErrNoDocument is returned when the shell is built without a presentation context.
var ErrNoDocument = errors.New("tui: presentation document is required")

// Model holds the shell state.
type Model struct {
	ctx        context.Context
	lastError  error
	store      *mode.Store
	doc        *themes.Document
	theme      themes.Theme
	modeSwitch components.ModeSwitchModel
	list       components.EntryListModel
	editor     components.EntryEditorModel
	help       help.Model
	keymap     KeyMap
	config     Config
	status     string
	width      int
	height     int
	focus      Focus
	ready      bool
	quitting   bool
}

// New builds the shell. ctx must carry a mode store (see mode.WithStore).
func New(ctx context.Context, opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Document == nil {
		return Model{}, ErrNoDocument
	}

	store := mode.FromContext(ctx)
	current := store.Mode()
	theme := cfg.Document.Theme(cfg.ThemeName)

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	m := Model{
		ctx:        ctx,
		store:      store,
		doc:        cfg.Document,
		theme:      theme,
		modeSwitch: components.NewModeSwitchModel(ctx, theme),
		list:       components.NewEntryListModel(nil, current, theme),
		editor:     components.NewEntryEditorModel(current, theme).WithClock(cfg.Now),
		help:       h,
		keymap:     DefaultKeyMap(),
		config:     cfg,
		width:      cfg.Width,
		height:     cfg.Height,
		focus:      FocusList,
	}
	m.list.SetFocused(true)
	m.handleResize()
	return m, nil
}

// Init loads entries.
func (m Model) Init() tea.Cmd {
	return m.loadEntries()
}

func (m Model) loadEntries() tea.Cmd {
	provider := m.config.Entries
	ctx := m.ctx
	return func() tea.Msg {
		if provider == nil {
			return entriesLoadedMsg{}
		}
		entries, err := provider.Entries(ctx)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case entriesLoadedMsg:
		m.ready = true
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.list.SetEntries(msg.entries)
		return m, nil

	case components.ModeChangedMsg:
		m.applyMode()
		return m, nil

	case locationResolvedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.lastError = nil
		m.editor.SetLocation(msg.location)
		m.status = "Location attached"
		return m, nil

	case components.EntrySubmittedMsg:
		m.list.Prepend(msg.Entry)
		m.status = "Saved to " + msg.Entry.Mode.Label() + " journal"
		m.setFocus(FocusList)
		return m, nil

	case components.EntrySelectedMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.delegate(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.focus == FocusEditor {
		switch {
		case key.Matches(msg, m.keymap.Cancel), key.Matches(msg, m.keymap.FocusNext):
			m.setFocus(FocusList)
			return m, nil
		case key.Matches(msg, m.keymap.Locate):
			return m.toggleLocation()
		}
		return m.delegate(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Compose), key.Matches(msg, m.keymap.FocusNext):
		return m, m.setFocus(FocusEditor)
	case key.Matches(msg, m.keymap.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keymap.ToggleMode), key.Matches(msg, m.keymap.SelectMode):
		var cmd tea.Cmd
		m.modeSwitch, cmd = m.modeSwitch.Update(msg)
		return m, cmd
	}

	return m.delegate(msg)
}

// toggleLocation detaches the editor's location, or asks the provider for one.
func (m Model) toggleLocation() (tea.Model, tea.Cmd) {
	if m.editor.Location() != nil {
		m.editor.SetLocation(nil)
		m.status = "Location removed"
		return m, nil
	}

	provider := m.config.Locations
	if provider == nil {
		m.status = "No location source configured"
		return m, nil
	}

	ctx := m.ctx
	return m, func() tea.Msg {
		loc, err := provider.CurrentLocation(ctx)
		return locationResolvedMsg{location: loc, err: err}
	}
}

func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusEditor:
		m.editor, cmd = m.editor.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// applyMode re-reads the mode and the markers it left on the document.
func (m *Model) applyMode() {
	current := m.store.Mode()
	m.theme = m.doc.Theme(m.config.ThemeName)

	m.modeSwitch.SetTheme(m.theme)
	m.list.SetTheme(m.theme)
	m.list.SetMode(current)
	m.editor.SetTheme(m.theme)
	m.editor.SetMode(current)
	m.status = "Switched to " + current.Label() + " mode"
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.list.SetFocused(f == FocusList)
	if f == FocusEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

func (m *Model) handleResize() {
	m.editor.SetWidth(m.width)
	m.help.Width = m.width
}

// Focus returns the focused pane.
func (m Model) Focus() Focus {
	return m.focus
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the shell.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.theme.Title.Render("lumen")
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.modeSwitch.View())

	editor := m.editor.View()
	helpView := m.help.View(m.keymap)

	var status string
	switch {
	case m.lastError != nil:
		status = m.theme.StatusError.Render("Error: " + m.lastError.Error())
	case m.status != "":
		status = m.theme.StatusInfo.Render(m.status)
	}

	// The list gets whatever the header, editor, status and help leave over.
	chrome := lipgloss.Height(header) + 1 + lipgloss.Height(editor) + lipgloss.Height(helpView)
	if status != "" {
		chrome += lipgloss.Height(status)
	}

	sections := []string{header}
	if !m.ready {
		sections = append(sections, m.theme.Italic.Render("Loading entries..."))
	} else {
		list := m.list
		list.SetSize(m.width, max(m.height-chrome, minListHeight))
		sections = append(sections, list.View())
	}
	sections = append(sections, "", editor)
	if status != "" {
		sections = append(sections, status)
	}

	sections = append(sections, helpView)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
