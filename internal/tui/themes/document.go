package themes

import (
	"sort"
	"sync"

	"github.com/Veraticus/lumen/internal/model"
)

// Document is the shared presentation context. Components never read mode
// state directly for styling; they look at which markers are present here.
type Document struct {
	markers map[string]struct{}
	mu      sync.RWMutex
}

// NewDocument creates an empty presentation context.
func NewDocument() *Document {
	return &Document{markers: make(map[string]struct{})}
}

// AddMarker adds marker. Adding twice is a no-op.
func (d *Document) AddMarker(marker string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.markers[marker] = struct{}{}
}

// RemoveMarker removes marker if present.
func (d *Document) RemoveMarker(marker string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.markers, marker)
}

// HasMarker reports whether marker is present.
func (d *Document) HasMarker(marker string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.markers[marker]
	return ok
}

// Markers returns the present markers, sorted.
func (d *Document) Markers() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, 0, len(d.markers))
	for m := range d.markers {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Public reports whether the public-mode marker is set.
func (d *Document) Public() bool {
	return d.HasMarker(model.MarkerPublic)
}

// Theme resolves the named theme against the document's current markers.
func (d *Document) Theme(name string) Theme {
	return GetTheme(name, d.Public())
}
