package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/leapstack-labs/drills/internal/cli/config"
	"github.com/leapstack-labs/drills/internal/cli/output"
	"github.com/leapstack-labs/drills/internal/engine"
	"github.com/leapstack-labs/drills/pkg/core"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Select     []string
	JSONOutput bool
	Watch      bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run all demos or specific demos",
		Long: `Execute demos one after another in their fixed order.

By default, runs every demo (or the "demos" list from drills.yaml).
Use --select to run specific demos by name or alias. The first failing
demo stops the run; later demos are reported as skipped.`,
		Example: `  # Run all demos
  drills run

  # Run specific demos
  drills run --select fizzbuzz,collatz

  # Run with JSON lines output for scripts
  drills run --json

  # Re-run whenever drills.yaml changes
  drills run --watch`,
		Aliases: []string{"all"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Select, "select", "s", nil, "Comma-separated list of demos to run")
	cmd.Flags().BoolVar(&opts.JSONOutput, "json", false, "Output as JSON lines for progress tracking")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when the config file changes")

	return cmd
}

func runRun(cmd *cobra.Command, opts *RunOptions) error {
	if !opts.Watch {
		return runOnce(cmd, opts)
	}
	return runWatch(cmd, opts)
}

// runWatch runs once, then again after every change to the config file,
// until the command context is cancelled. Run failures are reported but do
// not stop the watch.
func runWatch(cmd *cobra.Command, opts *RunOptions) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r := cmdCtx.Renderer

	report := func() {
		if err := runOnce(cmd, opts); err != nil {
			r.Warning(err.Error())
		}
	}
	report()

	used := config.GetConfigFileUsed()
	dir := "."
	if used != "" {
		dir = filepath.Dir(used)
	}
	_, _ = fmt.Fprintf(r.ErrWriter(), "Watching %s for config changes (Ctrl-C to stop)\n", dir)

	return watchConfig(cmd.Context(), dir, watchedConfigNames(used), watchDebounce, cmdCtx.Logger, func(_ context.Context, path string) error {
		if _, err := config.LoadConfig(path, cmd.Flags()); err != nil {
			// Keep the previous config until the file is valid again.
			r.Warning(err.Error())
			return nil
		}
		report()
		return nil
	})
}

func runOnce(cmd *cobra.Command, opts *RunOptions) error {
	r := NewCommandContextWithoutEngine(cmd).Renderer

	var onEvent func(engine.Event)
	if opts.JSONOutput {
		onEvent = func(ev engine.Event) { emitRunEvent(r, ev) }
	}

	cmdCtx, err := NewCommandContext(cmd, onEvent)
	if err != nil {
		return err
	}

	names := splitNames(opts.Select)
	if len(names) == 0 {
		names = splitNames(cmdCtx.Cfg.Demos)
	}

	run, runErr := cmdCtx.Engine.RunSelected(cmd.Context(), names)
	if run == nil {
		// Selection failed before anything ran.
		return runErr
	}
	if opts.JSONOutput {
		return runErr
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(buildRunOutput(run)); err != nil {
			return err
		}
	default:
		renderRunReport(r, run)
	}

	if runErr != nil && !errors.Is(runErr, engine.ErrDemoFailed) {
		return runErr
	}
	if run.Status == core.RunStatusFailed {
		return fmt.Errorf("run %s failed: %s", run.ID, run.Error)
	}
	return nil
}

// renderRunReport prints each demo's output and a summary in text or markdown.
func renderRunReport(r *output.Renderer, run *core.Run) {
	for _, dr := range run.Demos {
		r.Header(2, dr.Title)
		if len(dr.Output) > 0 {
			r.Lines(dr.Output)
		}
		detail := ""
		switch dr.Status {
		case core.DemoRunStatusSuccess:
			detail = fmt.Sprintf("%dms", dr.ExecutionMS)
		case core.DemoRunStatusFailed:
			detail = dr.Error
		}
		r.StatusLine(dr.Name, string(dr.Status), detail)
		r.Println("")
	}

	counts := run.Counts()
	r.Header(2, "Summary")
	r.KeyValue("Run", run.ID)
	r.KeyValue("Status", string(run.Status))
	r.KeyValue("Demos", fmt.Sprintf("%d passed, %d failed, %d skipped",
		counts[core.DemoRunStatusSuccess], counts[core.DemoRunStatusFailed], counts[core.DemoRunStatusSkipped]))
	r.KeyValue("Duration", (time.Duration(run.DurationMS()) * time.Millisecond).String())

	if run.Status == core.RunStatusCompleted {
		r.Println("")
		r.Success(fmt.Sprintf("All %d demos passed", len(run.Demos)))
	}
}

// buildRunOutput converts a run into its JSON report.
func buildRunOutput(run *core.Run) output.RunOutput {
	counts := run.Counts()
	out := output.RunOutput{
		ID:         run.ID,
		Status:     string(run.Status),
		StartedAt:  run.StartedAt.UTC().Format(time.RFC3339),
		DurationMS: run.DurationMS(),
		Error:      run.Error,
		Demos:      make([]output.DemoResult, 0, len(run.Demos)),
		Summary: output.RunSummary{
			Total:      len(run.Demos),
			Successful: counts[core.DemoRunStatusSuccess],
			Failed:     counts[core.DemoRunStatusFailed],
			Skipped:    counts[core.DemoRunStatusSkipped],
		},
	}
	if run.CompletedAt != nil {
		out.CompletedAt = run.CompletedAt.UTC().Format(time.RFC3339)
	}

	for _, dr := range run.Demos {
		lines := dr.Output
		if lines == nil {
			lines = []string{}
		}
		out.Demos = append(out.Demos, output.DemoResult{
			Name:        dr.Name,
			Title:       dr.Title,
			Status:      string(dr.Status),
			Output:      lines,
			Error:       dr.Error,
			ExecutionMS: dr.ExecutionMS,
		})
	}
	return out
}

// emitRunEvent outputs a run event as a JSON line.
func emitRunEvent(r *output.Renderer, event engine.Event) {
	_ = r.JSONLine(event)
}
