package tui

import (
	"time"

	"github.com/Veraticus/lumen/internal/service"
	"github.com/Veraticus/lumen/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Entries   service.EntryProvider
	Locations service.LocationProvider
	Document  *themes.Document
	Now       func() time.Time
	ThemeName string
	Width     int
	Height    int
	ShowHelp  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		ThemeName: "default",
		Now:       time.Now,
		Width:     80,
		Height:    24,
	}
}

// WithEntries sets where entries come from.
func WithEntries(provider service.EntryProvider) Option {
	return func(c *Config) {
		c.Entries = provider
	}
}

// WithLocations sets where Ctrl+L gets the current location from.
func WithLocations(provider service.LocationProvider) Option {
	return func(c *Config) {
		c.Locations = provider
	}
}

// WithDocument sets the presentation context the mode store writes markers to.
func WithDocument(doc *themes.Document) Option {
	return func(c *Config) {
		c.Document = doc
	}
}

// WithTheme sets the base theme name.
func WithTheme(name string) Option {
	return func(c *Config) {
		c.ThemeName = name
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock overrides the clock used for new entries.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithHelp starts with the full help expanded.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
