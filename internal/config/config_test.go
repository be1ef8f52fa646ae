package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/lumen/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("LUMEN_TEST_DIR", "/srv/lumen")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "memory database", in: ":memory:", want: ":memory:"},
		{name: "home only", in: "~", want: home},
		{name: "home prefix", in: "~/data/lumen.db", want: filepath.Join(home, "data/lumen.db")},
		{name: "env var", in: "$LUMEN_TEST_DIR/lumen.db", want: "/srv/lumen/lumen.db"},
		{name: "absolute", in: "/tmp/lumen.db", want: "/tmp/lumen.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDefaultDatabasePath_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "lumen", "lumen.db"), DefaultDatabasePath())
}

func TestLoad(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyDatabasePath, "/tmp/journal.db")
	v.Set(KeyLogFormat, "json")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/journal.db", cfg.DatabasePath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Demo)
	assert.False(t, cfg.Ephemeral)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		cfg     Config
	}{
		{
			name: "valid",
			cfg:  Config{DatabasePath: "/tmp/x.db", LogLevel: "info", LogFormat: "console"},
		},
		{
			name: "ephemeral without path",
			cfg:  Config{Ephemeral: true, LogLevel: "debug", LogFormat: "json"},
		},
		{
			name:    "missing path",
			cfg:     Config{LogLevel: "info", LogFormat: "console"},
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "bad level",
			cfg:     Config{DatabasePath: "/tmp/x.db", LogLevel: "chatty", LogFormat: "console"},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "bad format",
			cfg:     Config{DatabasePath: "/tmp/x.db", LogLevel: "info", LogFormat: "xml"},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
