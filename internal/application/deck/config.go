package deck

// DeckConfig contains configuration for the presentation loop
type DeckConfig struct {
	// Data directories
	DataDir   string
	SourceDir string

	// Display settings
	TimeFormat string

	// Refresh settings
	RefreshPerSecond float64

	// Live reload
	Watch bool

	// Diagnostics
	Debug bool
}

// Validate checks if the configuration is valid and fills in defaults
func (c *DeckConfig) Validate() error {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "24h"
	}
	if c.RefreshPerSecond == 0 {
		c.RefreshPerSecond = 10
	}
	return nil
}
