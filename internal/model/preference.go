package model

import "time"

// Preference is one stored key-value pair.
type Preference struct {
	UpdatedAt time.Time
	Key       string
	Value     string
}
