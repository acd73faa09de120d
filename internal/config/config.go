package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config is the top-level careerdeck configuration, corresponding to .careerdeck.yml.
type Config struct {
	DataDir          string  `yaml:"data_dir" koanf:"data_dir"`
	SourceDir        string  `yaml:"source_dir" koanf:"source_dir"`
	TimeFormat       string  `yaml:"time_format" koanf:"time_format"`
	RefreshPerSecond float64 `yaml:"refresh_per_second" koanf:"refresh_per_second"`
	Watch            bool    `yaml:"watch" koanf:"watch"`
	LogFile          string  `yaml:"log_file" koanf:"log_file"`
	Debug            bool    `yaml:"debug" koanf:"debug"`
}

// DefaultConfig returns the configuration used when no file or overrides exist.
func DefaultConfig() *Config {
	return &Config{
		DataDir:          "data",
		SourceDir:        "",
		TimeFormat:       "24h",
		RefreshPerSecond: 10,
		Watch:            true,
		LogFile:          "",
		Debug:            false,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CAREERDECK_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: CAREERDECK_DATA_DIR -> data_dir, etc.
	if err := k.Load(env.Provider("CAREERDECK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CAREERDECK_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validTimeFormats is the set of recognized clock format values.
var validTimeFormats = map[string]bool{
	"12h": true,
	"24h": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.TimeFormat != "" && !validTimeFormats[c.TimeFormat] {
		return fmt.Errorf("invalid time_format %q: must be 12h or 24h", c.TimeFormat)
	}

	if c.RefreshPerSecond <= 0 || c.RefreshPerSecond > 60 {
		return fmt.Errorf("refresh_per_second must be between 0 and 60")
	}

	return nil
}
