package tui

import (
	"context"
	"time"

	"github.com/Veraticus/lumen/internal/model"
	"github.com/google/uuid"
)

// StaticEntries serves a fixed slice of entries.
type StaticEntries []model.Entry

// Entries implements service.EntryProvider.
func (s StaticEntries) Entries(context.Context) ([]model.Entry, error) {
	out := make([]model.Entry, len(s))
	copy(out, s)
	return out, nil
}

// StaticLocation reports a fixed place, stamped with the time it is asked for.
type StaticLocation struct {
	Now   func() time.Time
	Place model.Location
}

// CurrentLocation implements service.LocationProvider.
func (s StaticLocation) CurrentLocation(context.Context) (*model.Location, error) {
	loc := s.Place
	if s.Now != nil {
		loc.Timestamp = s.Now()
	}
	return &loc, nil
}

// DemoLocation checks in at the same hall the demo entries use.
func DemoLocation(now func() time.Time) StaticLocation {
	return StaticLocation{
		Now: now,
		Place: model.Location{
			Name:      "Community Hall",
			Address:   "4 Market Square",
			Kind:      model.LocationCheckIn,
			Latitude:  51.4545,
			Longitude: -2.5879,
		},
	}
}

// DemoEntries returns sample entries relative to now so the shell has something to render.
func DemoEntries(now time.Time) StaticEntries {
	at := func(d time.Duration) time.Time { return now.Add(-d).Truncate(time.Minute) }

	return StaticEntries{
		{
			ID:        uuid.NewString(),
			Content:   "Finished the first draft of the retreat plan.",
			Category:  string(model.ActivityMilestone),
			Mode:      model.ModePublic,
			CreatedAt: at(30 * time.Minute),
			Location: &model.Location{
				Name:      "Community Hall",
				Address:   "4 Market Square",
				Kind:      model.LocationCheckIn,
				Latitude:  51.4545,
				Longitude: -2.5879,
				Timestamp: at(30 * time.Minute),
			},
		},
		{
			ID:        uuid.NewString(),
			Content:   "Felt my chest tighten when the meeting ran over again.",
			Category:  string(model.ActivityEmotionalTrigger),
			Mode:      model.ModePersonal,
			CreatedAt: at(3 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Content:   "Everyone shares more when we start with a quiet minute.",
			Category:  string(model.ActivityGroupInsight),
			Mode:      model.ModePublic,
			CreatedAt: at(26 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Content:   "Walking home helped. Noticing I think better outside.",
			Category:  string(model.ActivityReflection),
			Mode:      model.ModePersonal,
			CreatedAt: at(28 * time.Hour),
			Location: &model.Location{
				Kind:      model.LocationLive,
				Latitude:  51.4613,
				Longitude: -2.5920,
				Timestamp: at(28 * time.Hour),
			},
		},
		{
			ID:        uuid.NewString(),
			Content:   "Buy a new notebook.",
			Category:  string(model.ActivityNote),
			Mode:      model.ModePersonal,
			CreatedAt: at(50 * time.Hour),
		},
	}
}
