package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/drills/internal/cli/config"
	"github.com/leapstack-labs/drills/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/drills/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter drills.yaml",
		Long: `Write a starter drills.yaml configuration file.

The minimal template sets the output mode and the fizzbuzz and collatz
inputs. Use --example for a fully commented file listing every section.`,
		Example: `  # Initialize in current directory
  drills init

  # Initialize with every option spelled out
  drills init --example

  # Initialize in a new directory
  drills init my-drills

  # Force overwrite existing config
  drills init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			r := NewCommandContextWithoutEngine(cmd).Renderer

			template := "minimal"
			if example {
				template = "example"
			}
			return runInit(r, dir, template, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Write a fully commented configuration")

	return cmd
}

func runInit(r *output.Renderer, dir, template string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if config.ConfigExistsIn(dir) && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", filepath.Join(dir, sharedcfg.ConfigFileName))
	}

	if err := copyTemplate(template, dir, force); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	files, _ := listTemplateFiles(template)
	for _, f := range files {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Success("drills configuration written!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  drills list      See every demo")
	r.Println("  drills run       Run all demos")
	r.Println("  drills config    Show the effective configuration")

	return nil
}
