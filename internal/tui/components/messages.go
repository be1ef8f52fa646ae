package components

import "github.com/Veraticus/lumen/internal/model"

// ModeChangedMsg is emitted after the mode store committed a new mode.
type ModeChangedMsg struct {
	Mode model.Mode
}

// EntrySubmittedMsg carries a new entry out of the editor.
type EntrySubmittedMsg struct {
	Entry model.Entry
}

// EntrySelectedMsg is emitted when the list cursor lands on an entry.
type EntrySelectedMsg struct {
	Entry model.Entry
	Index int
}
