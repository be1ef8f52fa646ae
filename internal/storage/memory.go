package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Veraticus/lumen/internal/common"
	"github.com/Veraticus/lumen/internal/model"
)

// MemoryStorage keeps preferences in memory. It is not persistent and is only
// meant for ephemeral sessions and tests.
type MemoryStorage struct {
	prefs  map[string]model.Preference
	now    func() time.Time
	mu     sync.RWMutex
	closed bool
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		prefs: make(map[string]model.Preference),
		now:   time.Now,
	}
}

// GetPreference returns the value stored under key, or common.ErrNotFound.
func (m *MemoryStorage) GetPreference(ctx context.Context, key string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(key, "key"); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", common.ErrStorageClosed
	}

	p, ok := m.prefs[key]
	if !ok {
		return "", fmt.Errorf("preference %q: %w", key, common.ErrNotFound)
	}
	return p.Value, nil
}

// SetPreference writes value under key.
func (m *MemoryStorage) SetPreference(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrStorageClosed
	}

	m.prefs[key] = model.Preference{Key: key, Value: value, UpdatedAt: m.now()}
	return nil
}

// DeletePreference removes key.
func (m *MemoryStorage) DeletePreference(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return common.ErrStorageClosed
	}

	delete(m.prefs, key)
	return nil
}

// ListPreferences returns every preference ordered by key.
func (m *MemoryStorage) ListPreferences(ctx context.Context) ([]model.Preference, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, common.ErrStorageClosed
	}

	prefs := make([]model.Preference, 0, len(m.prefs))
	for _, p := range m.prefs {
		prefs = append(prefs, p)
	}
	sort.Slice(prefs, func(i, j int) bool { return prefs[i].Key < prefs[j].Key })
	return prefs, nil
}

// Close drops the stored values. Later calls fail with common.ErrStorageClosed.
func (m *MemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.prefs = nil
	return nil
}
