package components

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/lumen/internal/mode"
	"github.com/Veraticus/lumen/internal/model"
	"github.com/Veraticus/lumen/internal/storage"
	"github.com/Veraticus/lumen/internal/tui/themes"
)

// newScopedStore returns a context carrying a fresh in-memory mode store.
func newScopedStore(t *testing.T) (context.Context, *mode.Store, *themes.Document) {
	t.Helper()
	doc := themes.NewDocument()
	store := mode.NewStore(context.Background(), storage.NewMemoryStorage(), doc)
	return mode.WithStore(context.Background(), store), store, doc
}

var testTime = time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)

func testEntries() []model.Entry {
	return []model.Entry{
		{
			ID:        "e1",
			Content:   "Morning pages",
			Category:  "reflection",
			Mode:      model.ModePersonal,
			CreatedAt: testTime,
		},
		{
			ID:        "e2",
			Content:   "Group agreed on a weekly check-in",
			Category:  "group_insight",
			Mode:      model.ModePublic,
			CreatedAt: testTime.Add(time.Hour),
			Location: &model.Location{
				Name:      "Community Hall",
				Kind:      model.LocationCheckIn,
				Latitude:  51.5074,
				Longitude: -0.1278,
				Timestamp: testTime.Add(time.Hour),
			},
		},
		{
			ID:        "e3",
			Content:   "Imported from the old app",
			Category:  "gratitude",
			Mode:      model.ModePersonal,
			CreatedAt: testTime.Add(2 * time.Hour),
		},
	}
}
