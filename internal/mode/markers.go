package mode

import "github.com/Veraticus/lumen/internal/model"

// ApplyMarkers makes m's marker the only mode marker on doc.
func ApplyMarkers(doc Presentation, m model.Mode) {
	doc.RemoveMarker(m.Other().Marker())
	doc.AddMarker(m.Marker())
}
