// Package activity classifies journal entry categories into display metadata.
//
// The registry is closed: the five categories below are the only ones, and any
// other identifier resolves to the note entry.
package activity

import "github.com/Veraticus/lumen/internal/model"

// Config is the display metadata for one category. All values are opaque tokens.
type Config struct {
	Type        model.ActivityType
	Label       string
	Color       string
	Background  string
	TextColor   string
	BorderColor string
	Icon        string
}

// Option is one row of a category picker.
type Option struct {
	Value model.ActivityType
	Label string
	Icon  string
	Color string
}

// registry is indexed in declaration order and never written after init.
var registry = [...]Config{
	{
		Type:        model.ActivityNote,
		Label:       "Note",
		Color:       "#6b7280",
		Background:  "#f9fafb",
		TextColor:   "#374151",
		BorderColor: "#e5e7eb",
		Icon:        "📝",
	},
	{
		Type:        model.ActivityEmotionalTrigger,
		Label:       "Emotional Trigger",
		Color:       "#ef4444",
		Background:  "#fef2f2",
		TextColor:   "#b91c1c",
		BorderColor: "#fecaca",
		Icon:        "💭",
	},
	{
		Type:        model.ActivityGroupInsight,
		Label:       "Group Insight",
		Color:       "#3b82f6",
		Background:  "#eff6ff",
		TextColor:   "#1d4ed8",
		BorderColor: "#bfdbfe",
		Icon:        "👥",
	},
	{
		Type:        model.ActivityReflection,
		Label:       "Reflection",
		Color:       "#8b5cf6",
		Background:  "#f5f3ff",
		TextColor:   "#6d28d9",
		BorderColor: "#ddd6fe",
		Icon:        "🪞",
	},
	{
		Type:        model.ActivityMilestone,
		Label:       "Milestone",
		Color:       "#10b981",
		Background:  "#ecfdf5",
		TextColor:   "#047857",
		BorderColor: "#a7f3d0",
		Icon:        "🏆",
	},
}

// Lookup returns the config for a typed category.
func Lookup(t model.ActivityType) Config {
	switch t {
	case model.ActivityNote:
		return registry[0]
	case model.ActivityEmotionalTrigger:
		return registry[1]
	case model.ActivityGroupInsight:
		return registry[2]
	case model.ActivityReflection:
		return registry[3]
	case model.ActivityMilestone:
		return registry[4]
	default:
		return registry[0]
	}
}

// Classify resolves an untrusted category string. It never fails: unknown,
// empty or drifted identifiers get the note config.
func Classify(identifier string) Config {
	return Lookup(model.ActivityType(identifier))
}

// IsKnown reports whether identifier names a registered category.
func IsKnown(identifier string) bool {
	for _, cfg := range registry {
		if string(cfg.Type) == identifier {
			return true
		}
	}
	return false
}

// Options lists every category in declaration order. The slice is freshly allocated.
func Options() []Option {
	opts := make([]Option, 0, len(registry))
	for _, cfg := range registry {
		opts = append(opts, Option{
			Value: cfg.Type,
			Label: cfg.Label,
			Icon:  cfg.Icon,
			Color: cfg.Color,
		})
	}
	return opts
}

// Len is the number of registered categories.
func Len() int {
	return len(registry)
}
