package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/lumen/internal/mode"
	"github.com/Veraticus/lumen/internal/model"
	"github.com/Veraticus/lumen/internal/storage"
	"github.com/Veraticus/lumen/internal/tui/components"
	"github.com/Veraticus/lumen/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 12, 18, 0, 0, 0, time.UTC)

type failingProvider struct{}

func (failingProvider) Entries(context.Context) ([]model.Entry, error) {
	return nil, errors.New("provider offline")
}

type failingLocator struct{}

func (failingLocator) CurrentLocation(context.Context) (*model.Location, error) {
	return nil, errors.New("gps unavailable")
}

type harness struct {
	t     *testing.T
	prefs *storage.MemoryStorage
	store *mode.Store
	doc   *themes.Document
	model Model
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()

	prefs := storage.NewMemoryStorage()
	doc := themes.NewDocument()
	store := mode.NewStore(context.Background(), prefs, doc)
	ctx := mode.WithStore(context.Background(), store)

	opts = append([]Option{
		WithDocument(doc),
		WithEntries(DemoEntries(fixedNow)),
		WithClock(func() time.Time { return fixedNow }),
		WithSize(100, 40),
	}, opts...)

	m, err := New(ctx, opts...)
	require.NoError(t, err)

	h := &harness{t: t, prefs: prefs, store: store, doc: doc, model: m}
	h.run(m.Init())
	return h
}

// send applies msg and feeds back any message the shell itself produces.
// Cursor blink and other timer commands are dropped.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case entriesLoadedMsg, locationResolvedMsg, components.ModeChangedMsg, components.EntrySubmittedMsg:
		h.run(h.send(msg))
	}
}

// key presses s and returns the resulting command without running it.
func (h *harness) key(s string) tea.Cmd {
	h.t.Helper()
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNew_RequiresDocument(t *testing.T) {
	store := mode.NewStore(context.Background(), nil, themes.NewDocument())
	_, err := New(mode.WithStore(context.Background(), store))
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestNew_OutsideStoreScopePanics(t *testing.T) {
	assert.PanicsWithError(t, mode.ErrNoStore.Error(), func() {
		_, _ = New(context.Background(), WithDocument(themes.NewDocument()))
	})
}

func TestModel_LoadsEntries(t *testing.T) {
	h := newHarness(t)

	assert.True(t, h.model.ready)
	assert.Len(t, h.model.list.Visible(), 5)
	assert.Contains(t, h.model.View(), "5 entries · Personal")
}

func TestModel_LoadError(t *testing.T) {
	h := newHarness(t, WithEntries(failingProvider{}))

	assert.Contains(t, h.model.View(), "Error: provider offline")
}

func TestModel_ToggleModeRestylesAndFilters(t *testing.T) {
	h := newHarness(t)
	personalPrimary := h.model.theme.Primary

	h.run(h.key("m"))

	assert.Equal(t, model.ModePublic, h.store.Mode())
	assert.True(t, h.doc.HasMarker(model.MarkerPublic))
	assert.False(t, h.doc.HasMarker(model.MarkerPersonal))
	assert.NotEqual(t, personalPrimary, h.model.theme.Primary)
	assert.Len(t, h.model.list.Visible(), 2)
	assert.Contains(t, h.model.View(), "Switched to Public mode")

	stored, err := h.prefs.GetPreference(context.Background(), mode.PreferenceKey)
	require.NoError(t, err)
	assert.Equal(t, "public", stored)

	h.run(h.key("p"))
	assert.Equal(t, model.ModePersonal, h.store.Mode())
	assert.Len(t, h.model.list.Visible(), 5)
}

func TestModel_ComposeAndSave(t *testing.T) {
	h := newHarness(t)
	h.run(h.key("P"))

	h.key("n")
	require.Equal(t, FocusEditor, h.model.Focus())

	// mode keys are plain text while editing
	h.key("m")
	assert.Equal(t, model.ModePublic, h.store.Mode())

	h.model.editor.SetValue("Thanks all for tonight")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlG})
	h.run(h.send(tea.KeyMsg{Type: tea.KeyCtrlS}))

	assert.Equal(t, FocusList, h.model.Focus())
	visible := h.model.list.Visible()
	require.Len(t, visible, 3)
	assert.Equal(t, "Thanks all for tonight", visible[0].Content)
	assert.Equal(t, string(model.ActivityEmotionalTrigger), visible[0].Category)
	assert.Equal(t, model.ModePublic, visible[0].Mode)
	assert.Equal(t, fixedNow, visible[0].CreatedAt)
	assert.Contains(t, h.model.View(), "Saved to Public journal")
}

func TestModel_EscapeLeavesEditor(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FocusEditor, h.model.Focus())

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FocusList, h.model.Focus())
}

func TestModel_Quit(t *testing.T) {
	h := newHarness(t)

	_, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	cmd = h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, h.model.Quitting())
	assert.Empty(t, h.model.View())
}

func TestModel_ExternalModeChange(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.store.SetMode(context.Background(), model.ModePublic))
	h.send(components.ModeChangedMsg{Mode: model.ModePublic})

	assert.Len(t, h.model.list.Visible(), 2)
	assert.Equal(t, themes.DefaultPublic.Primary, h.model.theme.Primary)
}

func TestModel_HelpToggle(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.model.help.ShowAll)

	h.key("?")
	assert.True(t, h.model.help.ShowAll)
	assert.Contains(t, h.model.View(), "next category")
}

func TestDemoEntries(t *testing.T) {
	entries, err := DemoEntries(fixedNow).Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 5)

	seen := make(map[string]bool)
	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
		assert.True(t, e.CreatedAt.Before(fixedNow))
		assert.True(t, e.Mode.Valid())
	}
}

func TestModel_SpaceTogglesMode(t *testing.T) {
	h := newHarness(t)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	h.run(h.send(space))
	assert.Equal(t, model.ModePublic, h.store.Mode())
	assert.Len(t, h.model.list.Visible(), 2)

	h.run(h.send(space))
	assert.Equal(t, model.ModePersonal, h.store.Mode())
	assert.Len(t, h.model.list.Visible(), 5)
}

func TestModel_SpaceWhileEditingIsText(t *testing.T) {
	h := newHarness(t)
	h.key("n")

	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, model.ModePersonal, h.store.Mode())
	assert.Equal(t, FocusEditor, h.model.Focus())
}

func TestModel_AttachLocation(t *testing.T) {
	h := newHarness(t, WithLocations(DemoLocation(func() time.Time { return fixedNow })))
	h.key("n")

	h.run(h.send(tea.KeyMsg{Type: tea.KeyCtrlL}))
	require.NotNil(t, h.model.editor.Location())
	assert.Contains(t, h.model.View(), "Location attached")

	h.model.editor.SetValue("Checked in for the evening circle")
	h.run(h.send(tea.KeyMsg{Type: tea.KeyCtrlS}))

	saved := h.model.list.Visible()[0]
	require.NotNil(t, saved.Location)
	assert.Equal(t, "Community Hall", saved.Location.Name)
	assert.Equal(t, model.LocationCheckIn, saved.Location.Kind)
	assert.Equal(t, fixedNow, saved.Location.Timestamp)
	assert.Nil(t, h.model.editor.Location())
}

func TestModel_DetachLocation(t *testing.T) {
	h := newHarness(t, WithLocations(DemoLocation(func() time.Time { return fixedNow })))
	h.key("n")

	h.run(h.send(tea.KeyMsg{Type: tea.KeyCtrlL}))
	require.NotNil(t, h.model.editor.Location())

	h.run(h.send(tea.KeyMsg{Type: tea.KeyCtrlL}))
	assert.Nil(t, h.model.editor.Location())
	assert.Contains(t, h.model.View(), "Location removed")
}

func TestModel_LocationUnavailable(t *testing.T) {
	t.Run("no provider", func(t *testing.T) {
		h := newHarness(t)
		h.key("n")

		cmd := h.send(tea.KeyMsg{Type: tea.KeyCtrlL})
		assert.Nil(t, cmd)
		assert.Nil(t, h.model.editor.Location())
		assert.Contains(t, h.model.View(), "No location source configured")
	})

	t.Run("provider error", func(t *testing.T) {
		h := newHarness(t, WithLocations(failingLocator{}))
		h.key("n")

		h.run(h.send(tea.KeyMsg{Type: tea.KeyCtrlL}))
		assert.Nil(t, h.model.editor.Location())
		assert.Contains(t, h.model.View(), "Error: gps unavailable")
	})
}

func TestModel_ListFitsWindow(t *testing.T) {
	h := newHarness(t, WithSize(100, 24))

	view := h.model.View()
	assert.Contains(t, view, "5 entries · Personal")
	assert.Contains(t, view, "more")
	assert.NotContains(t, view, "Buy a new notebook.")
}

func TestModel_ToggleEmitsSingleModeChange(t *testing.T) {
	h := newHarness(t)

	cmd := h.key("m")
	require.NotNil(t, cmd)
	assert.Equal(t, components.ModeChangedMsg{Mode: model.ModePublic}, cmd())

	notified := 0
	cancel := h.store.Subscribe(func(model.Mode) { notified++ })
	defer cancel()

	h.run(h.key("m"))
	assert.Equal(t, 1, notified)
	assert.Equal(t, model.ModePersonal, h.store.Mode())
}
