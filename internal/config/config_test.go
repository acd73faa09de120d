package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "24h", cfg.TimeFormat)
	assert.Equal(t, 10.0, cfg.RefreshPerSecond)
	assert.True(t, cfg.Watch)
	assert.NoError(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".careerdeck.yml")

	original := DefaultConfig()
	original.DataDir = "/tmp/deck"
	original.SourceDir = "/home/me/portfolio"
	original.TimeFormat = "12h"
	original.RefreshPerSecond = 5
	original.Watch = false

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.DataDir, loaded.DataDir)
	assert.Equal(t, original.SourceDir, loaded.SourceDir)
	assert.Equal(t, original.TimeFormat, loaded.TimeFormat)
	assert.Equal(t, original.RefreshPerSecond, loaded.RefreshPerSecond)
	assert.Equal(t, original.Watch, loaded.Watch)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	os.Setenv("CAREERDECK_TIME_FORMAT", "12h")
	defer os.Unsetenv("CAREERDECK_TIME_FORMAT")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, "12h", cfg.TimeFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty data_dir",
			mutate:  func(c *Config) { c.DataDir = "" },
			wantErr: "data_dir",
		},
		{
			name:    "bad time_format",
			mutate:  func(c *Config) { c.TimeFormat = "military" },
			wantErr: "time_format",
		},
		{
			name:    "zero refresh rate",
			mutate:  func(c *Config) { c.RefreshPerSecond = 0 },
			wantErr: "refresh_per_second",
		},
		{
			name:    "excessive refresh rate",
			mutate:  func(c *Config) { c.RefreshPerSecond = 120 },
			wantErr: "refresh_per_second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
