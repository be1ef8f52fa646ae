package model

import "time"

// Entry is a journal entry as handed to the presentation layer.
// Category is untyped at this boundary and must be resolved through the activity registry.
type Entry struct {
	CreatedAt time.Time `json:"created_at"`
	Location  *Location `json:"location,omitempty"`
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Mode      Mode      `json:"mode"`
}

// VisibleIn reports whether the entry should be shown while the session is in mode m.
// Personal sessions see everything; public sessions only see public entries.
func (e Entry) VisibleIn(m Mode) bool {
	if m == ModePublic {
		return e.Mode == ModePublic
	}
	return true
}
