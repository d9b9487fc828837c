package config

import (
	"github.com/leapstack-labs/drills/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	return c.Exercises.Validate()
}
