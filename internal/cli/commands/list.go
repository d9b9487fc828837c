package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/drills/internal/cli/output"
	"github.com/leapstack-labs/drills/internal/registry"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all demos in run order",
		Long: `List every demo with its position, name, aliases and summary.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all demos (auto-detect output format)
  drills list

  # List demos as JSON
  drills list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	reg, err := createRegistry(cmdCtx.Cfg)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(buildListOutput(reg))
	}

	r.Header(1, fmt.Sprintf("Demos (%d total)", reg.Count()))
	rows := make([][]any, 0, reg.Count())
	for i, d := range reg.All() {
		rows = append(rows, []any{i + 1, d.Name, strings.Join(d.Aliases, ", "), d.Summary})
	}
	r.Table([]string{"#", "Name", "Aliases", "Summary"}, rows)
	return nil
}

func buildListOutput(reg *registry.DemoRegistry) output.ListOutput {
	out := output.ListOutput{
		Demos: make([]output.DemoInfo, 0, reg.Count()),
		Total: reg.Count(),
	}
	for i, d := range reg.All() {
		out.Demos = append(out.Demos, output.DemoInfo{
			Order:   i + 1,
			Name:    d.Name,
			Title:   d.Title,
			Aliases: d.Aliases,
			Summary: d.Summary,
		})
	}
	return out
}
