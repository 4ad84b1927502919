package config

import (
	"fmt"

	"github.com/go-leo/typefactory/furniture"
)

// UniverseConfig describes the factory universe by catalog names, one row per sequence.
type UniverseConfig struct {
	Sequences [][]string `json:"sequences"`
}

// SetDefaults falls back to the reference data set.
func (c *UniverseConfig) SetDefaults() {
	if len(c.Sequences) == 0 {
		c.Sequences = furniture.Reference
	}
}

// Validate checks every name is in the catalog.
func (c UniverseConfig) Validate() error {
	for i, row := range c.Sequences {
		if len(row) == 0 {
			return fmt.Errorf("sequence %d is empty", i)
		}
		for _, name := range row {
			if _, err := furniture.Lookup(name); err != nil {
				return fmt.Errorf("sequence %d: %w", i, err)
			}
		}
	}
	return nil
}
