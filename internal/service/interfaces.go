// Package service defines the interfaces lumen's components depend on.
package service

import (
	"context"

	"github.com/Veraticus/lumen/internal/model"
)

// Storage defines the contract for the durable preference layer.
type Storage interface {
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
	DeletePreference(ctx context.Context, key string) error
	ListPreferences(ctx context.Context) ([]model.Preference, error)
	Close() error
}

// EntryProvider supplies journal entries to the presentation layer.
// Entry persistence lives outside lumen; implementations adapt whatever backs it.
type EntryProvider interface {
	Entries(ctx context.Context) ([]model.Entry, error)
}

// LocationProvider reports where the user is when they attach a location to an entry.
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (*model.Location, error)
}
