package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig defines the log output.
type LoggingConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = zerolog.InfoLevel.String()
	}
}

// Validate checks the level is known.
func (c LoggingConfig) Validate() error {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil || lvl == zerolog.NoLevel {
		return fmt.Errorf("unknown level %q", c.Level)
	}
	return nil
}
