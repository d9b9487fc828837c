// Package config provides shared exercise configuration for drills.
// This package is decoupled from CLI concerns; the CLI layers file, env and
// flag sources on top of it.
package config

import (
	"fmt"
	"strings"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "drills.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "drills.yml"

// Exercises holds the inputs fed to each demo.
type Exercises struct {
	FizzBuzz  FizzBuzzConfig  `koanf:"fizzbuzz" yaml:"fizzbuzz" json:"fizzbuzz"`
	Collatz   CollatzConfig   `koanf:"collatz" yaml:"collatz" json:"collatz"`
	Banner    BannerConfig    `koanf:"banner" yaml:"banner" json:"banner"`
	Rectangle RectangleConfig `koanf:"rectangle" yaml:"rectangle" json:"rectangle"`
	Transpose TransposeConfig `koanf:"transpose" yaml:"transpose" json:"transpose"`
}

// FizzBuzzConfig controls the classifier demo.
type FizzBuzzConfig struct {
	Limit uint32 `koanf:"limit" yaml:"limit" json:"limit"`
}

// CollatzConfig controls the stepper demo.
type CollatzConfig struct {
	Start uint64 `koanf:"start" yaml:"start" json:"start"`
}

// BannerConfig controls the speech-bubble demo.
type BannerConfig struct {
	Messages []string `koanf:"messages" yaml:"messages" json:"messages"`
	// Width wraps the bubble; 0 fits each message on one line.
	Width int `koanf:"width" yaml:"width" json:"width"`
}

// RectangleConfig controls the struct demo.
type RectangleConfig struct {
	Width  uint32 `koanf:"width" yaml:"width" json:"width"`
	Height uint32 `koanf:"height" yaml:"height" json:"height"`
	Delta  uint32 `koanf:"delta" yaml:"delta" json:"delta"`
}

// TransposeConfig controls the matrix demo.
type TransposeConfig struct {
	Matrix [][]int32 `koanf:"matrix" yaml:"matrix" json:"matrix"`
}

// Validate checks values no exercise can run with.
func (e *Exercises) Validate() error {
	var problems []string

	if len(e.Transpose.Matrix) != 3 {
		problems = append(problems, fmt.Sprintf("transpose.matrix must have 3 rows, got %d", len(e.Transpose.Matrix)))
	} else {
		for i, row := range e.Transpose.Matrix {
			if len(row) != 3 {
				problems = append(problems, fmt.Sprintf("transpose.matrix row %d must have 3 columns, got %d", i, len(row)))
			}
		}
	}

	for i, msg := range e.Banner.Messages {
		if strings.TrimSpace(msg) == "" {
			problems = append(problems, fmt.Sprintf("banner.messages[%d] is empty", i))
		}
	}

	if e.Banner.Width < 0 {
		problems = append(problems, "banner.width must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid exercise configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
