// Package model holds lumen's domain types.
package model

// Mode is the session-wide privacy scope.
type Mode string

const (
	// ModePersonal is the private journaling mode.
	ModePersonal Mode = "personal"
	// ModePublic is the shared group mode.
	ModePublic Mode = "public"

	// DefaultMode is used whenever no valid mode is known.
	DefaultMode = ModePersonal
)

// Presentation markers toggled on the global presentation context.
const (
	MarkerPersonal = "personal-mode"
	MarkerPublic   = "public-mode"
)

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModePersonal, ModePublic}
}

// ParseMode accepts only the two persisted literals.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModePersonal:
		return ModePersonal, true
	case ModePublic:
		return ModePublic, true
	default:
		return "", false
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := ParseMode(string(m))
	return ok
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModePublic {
		return ModePersonal
	}
	return ModePublic
}

// Marker returns the presentation marker for m.
func (m Mode) Marker() string {
	if m == ModePublic {
		return MarkerPublic
	}
	return MarkerPersonal
}

// Label returns the human-readable name.
func (m Mode) Label() string {
	if m == ModePublic {
		return "Public"
	}
	return "Personal"
}

func (m Mode) String() string {
	return string(m)
}
