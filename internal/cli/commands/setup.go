package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/drills/internal/cli/config"
	"github.com/leapstack-labs/drills/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/drills/internal/config"
	"github.com/leapstack-labs/drills/internal/demos"
	"github.com/leapstack-labs/drills/internal/engine"
	"github.com/leapstack-labs/drills/internal/registry"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Registry *registry.DemoRegistry
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with registry, engine and renderer.
// onEvent, when non-nil, receives the engine's progress events.
func NewCommandContext(cmd *cobra.Command, onEvent func(engine.Event)) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutEngine(cmd)

	reg, err := createRegistry(cmdCtx.Cfg)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(engine.Config{
		Registry: reg,
		Logger:   cmdCtx.Logger,
		OnEvent:  onEvent,
	})
	if err != nil {
		return nil, err
	}

	cmdCtx.Registry = reg
	cmdCtx.Engine = eng
	return cmdCtx, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that compute a single exercise directly.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to defaults.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		OutputFormat: config.DefaultOutput,
		Exercises:    sharedcfg.DefaultExercises(),
	}
}

func createRegistry(cfg *config.Config) (*registry.DemoRegistry, error) {
	reg, err := registry.New(demos.All(cfg.Exercises)...)
	if err != nil {
		return nil, fmt.Errorf("failed to register demos: %w", err)
	}
	return reg, nil
}

// splitNames turns ["a,b", " c "] into ["a", "b", "c"].
func splitNames(values []string) []string {
	var names []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				names = append(names, part)
			}
		}
	}
	return names
}
