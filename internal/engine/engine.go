// Package engine runs demos.
// It executes a selection of demos one after another, captures each demo's
// output, and records the outcome on a core.Run.
package engine

import (
	"errors"
	"log/slog"

	"github.com/leapstack-labs/drills/internal/registry"
)

// Engine orchestrates the execution of demos.
type Engine struct {
	registry *registry.DemoRegistry

	// Structured logger
	logger *slog.Logger

	onEvent func(Event)
	newID   func() string
}

// Config holds engine configuration.
type Config struct {
	// Registry holds the demos available to run
	Registry *registry.DemoRegistry
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
	// OnEvent receives progress events (optional)
	OnEvent func(Event)
	// NewID generates run IDs (optional, uses random UUIDs if nil)
	NewID func() string
}

// New creates a new engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Registry == nil {
		return nil, errors.New("engine: registry is required")
	}

	// Initialize logger (use discard handler if nil)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	newID := cfg.NewID
	if newID == nil {
		newID = newRunID
	}

	logger.Debug("initializing engine", "demos", cfg.Registry.Count())

	return &Engine{
		registry: cfg.Registry,
		logger:   logger,
		onEvent:  cfg.OnEvent,
		newID:    newID,
	}, nil
}

// Registry returns the demo registry.
func (e *Engine) Registry() *registry.DemoRegistry {
	return e.registry
}
