package tui

import "github.com/Veraticus/lumen/internal/model"

// Data loading messages.
type entriesLoadedMsg struct {
	err     error
	entries []model.Entry
}

type locationResolvedMsg struct {
	err      error
	location *model.Location
}
