// Package mode owns the session's current privacy mode.
//
// A Store is constructed once per session, rehydrated from durable preferences,
// and handed to consumers through WithStore/FromContext. Every write updates
// memory, persists, and then toggles the presentation markers, in that order,
// under a single lock.
package mode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/Veraticus/lumen/internal/common"
	"github.com/Veraticus/lumen/internal/model"
)

// PreferenceKey is the durable key the mode is stored under.
const PreferenceKey = "lumen.mode"

var (
	// ErrInvalidMode is returned when SetMode is given something other than personal or public.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrNoStore is the panic value for using a store outside the scope it was provided in.
	ErrNoStore = errors.New("mode store used outside of its provided scope")
)

// Preferences is the durable key-value storage the store persists to.
// GetPreference returns common.ErrNotFound for absent keys.
type Preferences interface {
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
}

// Presentation is the shared context the mode markers live on.
type Presentation interface {
	AddMarker(marker string)
	RemoveMarker(marker string)
	HasMarker(marker string) bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger overrides the logger used for degradation warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store holds the authoritative mode for a session.
type Store struct {
	prefs      Preferences
	doc        Presentation
	logger     *slog.Logger
	listeners  map[int]func(model.Mode)
	current    model.Mode
	nextID     int
	mu         sync.RWMutex
	persistent bool
}

// NewStore rehydrates the mode from prefs and applies its markers to doc.
// A nil prefs gives a session that never persists. A nil doc is a wiring bug and panics.
func NewStore(ctx context.Context, prefs Preferences, doc Presentation, opts ...Option) *Store {
	if doc == nil {
		panic("mode: NewStore requires a presentation context")
	}

	s := &Store{
		prefs:      prefs,
		doc:        doc,
		logger:     slog.Default(),
		listeners:  make(map[int]func(model.Mode)),
		persistent: prefs != nil,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.current = s.load(ctx)
	ApplyMarkers(s.doc, s.current)

	return s
}

// load reads the persisted mode. Anything missing, unreadable or invalid is the default.
func (s *Store) load(ctx context.Context) model.Mode {
	if s.prefs == nil {
		return model.DefaultMode
	}

	raw, err := s.prefs.GetPreference(ctx, PreferenceKey)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Debug("mode preference unreadable, using default",
				"key", PreferenceKey,
				"error", err)
		}
		return model.DefaultMode
	}

	m, ok := model.ParseMode(raw)
	if !ok {
		s.logger.Debug("ignoring invalid persisted mode",
			"key", PreferenceKey,
			"value", raw)
		return model.DefaultMode
	}
	return m
}

// Mode returns the current mode.
func (s *Store) Mode() model.Mode {
	s.mustBeInScope()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Persistent reports whether writes still reach durable storage.
func (s *Store) Persistent() bool {
	s.mustBeInScope()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistent
}

// SetMode commits next. Only ErrInvalidMode is ever returned; persistence
// failures degrade the session to in-memory operation instead.
func (s *Store) SetMode(ctx context.Context, next model.Mode) error {
	s.mustBeInScope()

	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, next)
	}

	s.mu.Lock()
	s.commitLocked(ctx, next)
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	notify(listeners, next)
	return nil
}

// Toggle flips to the other mode and returns it.
func (s *Store) Toggle(ctx context.Context) model.Mode {
	s.mustBeInScope()

	s.mu.Lock()
	next := s.current.Other()
	s.commitLocked(ctx, next)
	listeners := s.snapshotListenersLocked()
	s.mu.Unlock()

	notify(listeners, next)
	return next
}

// Subscribe registers fn to run after every committed write. The returned func unregisters it.
func (s *Store) Subscribe(fn func(model.Mode)) func() {
	s.mustBeInScope()

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// commitLocked runs the write transaction: memory, then storage, then markers.
func (s *Store) commitLocked(ctx context.Context, next model.Mode) {
	s.current = next
	s.persistLocked(ctx, next)
	ApplyMarkers(s.doc, next)
}

func (s *Store) persistLocked(ctx context.Context, next model.Mode) {
	if !s.persistent {
		return
	}

	if err := s.prefs.SetPreference(ctx, PreferenceKey, string(next)); err != nil {
		s.persistent = false
		s.logger.Warn("mode preference could not be saved, continuing without persistence",
			"key", PreferenceKey,
			"mode", string(next),
			"error", err)
	}
}

func (s *Store) snapshotListenersLocked() []func(model.Mode) {
	if len(s.listeners) == 0 {
		return nil
	}

	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fns := make([]func(model.Mode), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	return fns
}

func notify(listeners []func(model.Mode), m model.Mode) {
	for _, fn := range listeners {
		fn(m)
	}
}

func (s *Store) mustBeInScope() {
	if s == nil {
		panic(ErrNoStore)
	}
}
