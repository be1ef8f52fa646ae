// Package config loads lumen's configuration from viper.
package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lumen/internal/common"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyDatabasePath  = "database.path"
	KeyEphemeral     = "database.ephemeral"
	KeyTheme         = "ui.theme"
	KeyDemo          = "ui.demo"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	EnvPrefix        = "LUMEN"
	DefaultLogFormat = "console"
)

// Config is the typed view over viper settings.
type Config struct {
	DatabasePath string
	Theme        string
	LogLevel     string
	LogFormat    string
	Ephemeral    bool
	Demo         bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath())
	v.SetDefault(KeyEphemeral, false)
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyDemo, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
}

// Load reads the typed config out of v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DatabasePath: ExpandPath(strings.TrimSpace(v.GetString(KeyDatabasePath))),
		Ephemeral:    v.GetBool(KeyEphemeral),
		Theme:        v.GetString(KeyTheme),
		Demo:         v.GetBool(KeyDemo),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the config can be used to start a session.
func (c Config) Validate() error {
	if !c.Ephemeral && c.DatabasePath == "" {
		return fmt.Errorf("%w: %s must be set unless running ephemeral", common.ErrMissingConfig, KeyDatabasePath)
	}
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
