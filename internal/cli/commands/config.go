package commands

import (
	"fmt"

	"github.com/leapstack-labs/drills/internal/cli/config"
	"github.com/leapstack-labs/drills/internal/cli/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after merging defaults, drills.yaml,
DRILLS_* environment variables and flags.

The output is valid drills.yaml content (or JSON with --output json).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutEngine(cmd)
			return renderConfig(cmdCtx.Renderer, cmdCtx.Cfg, config.GetConfigFileUsed())
		},
	}
}

func renderConfig(r *output.Renderer, cfg *config.Config, source string) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if source != "" {
		r.Printf("# loaded from %s\n", source)
	} else {
		r.Println("# no config file found; showing defaults with env and flag overrides")
	}
	r.Printf("%s", data)
	return nil
}
