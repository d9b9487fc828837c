// Package config provides configuration management for the drills CLI.
//
// This package layers CLI concerns (output mode, verbosity, default demo
// selection) on top of the shared exercise inputs from internal/config,
// which are embedded so their sections sit at the top level of drills.yaml.
package config

import (
	sharedcfg "github.com/leapstack-labs/drills/internal/config"
)

// Exercises is an alias for the shared exercise inputs.
// This allows CLI code to use config.Exercises without importing internal/config.
type Exercises = sharedcfg.Exercises

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string   `koanf:"output" yaml:"output" json:"output"`
	Verbose      bool     `koanf:"verbose" yaml:"verbose" json:"verbose"`
	Demos        []string `koanf:"demos" yaml:"demos,omitempty" json:"demos,omitempty"`

	sharedcfg.Exercises `koanf:",squash" yaml:",inline"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix     = "DRILLS_"
)

// Flag-to-key mapping for flags whose names differ from their config keys.
var flagKeys = map[string]string{
	"fizzbuzz-limit": "fizzbuzz.limit",
	"collatz-start":  "collatz.start",
}
