package model

import "time"

// LocationKind distinguishes how a location was captured.
type LocationKind string

const (
	// LocationLive is a continuously shared position.
	LocationLive LocationKind = "live"
	// LocationCheckIn is a one-off check-in at a place.
	LocationCheckIn LocationKind = "checkin"
)

// Location is the location metadata attached to an entry.
type Location struct {
	Timestamp time.Time    `json:"timestamp"`
	Name      string       `json:"name,omitempty"`
	Address   string       `json:"address,omitempty"`
	Kind      LocationKind `json:"kind"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
}
