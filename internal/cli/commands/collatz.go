package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/leapstack-labs/drills/internal/cli/output"
	"github.com/leapstack-labs/drills/internal/demos"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewCollatzCommand creates the collatz command.
func NewCollatzCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collatz [n]",
		Short: "Print the Collatz trajectory of n",
		Long: `Follow n through the Collatz rule (halve even values, map odd values to
3n+1) until it reaches 1, then report the number of steps and the peak.

n defaults to collatz.start from the configuration.`,
		Example: `  drills collatz 27
  drills collatz 97 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContextWithoutEngine(cmd)

			start := cmdCtx.Cfg.Collatz.Start
			if len(args) > 0 {
				n, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: must be a positive integer", args[0])
				}
				start = n
			}

			cmdCtx.Logger.Debug("computing collatz trajectory", "start", start)
			return renderCollatz(cmdCtx.Renderer, start)
		},
	}

	return cmd
}

func renderCollatz(r *output.Renderer, start uint64) error {
	seq, err := drills.CollatzSequence(start)
	if errors.Is(err, drills.ErrZeroStart) {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		out := output.CollatzOutput{
			Start:      start,
			Trajectory: seq,
			Steps:      len(seq) - 1,
			Peak:       drills.CollatzPeak(seq),
		}
		if err != nil {
			out.Error = err.Error()
		}
		if jsonErr := r.JSON(out); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	p := message.NewPrinter(language.English)

	r.Header(1, p.Sprintf("Collatz trajectory of %d", start))
	r.Println(demos.JoinTrajectory(seq))
	r.Println("")
	if err != nil {
		r.KeyValue("Stopped after", p.Sprintf("%d steps", len(seq)-1))
		return fmt.Errorf("collatz %d: %w", start, err)
	}
	r.KeyValue("Steps", p.Sprintf("%d", len(seq)-1))
	r.KeyValue("Peak", p.Sprintf("%d", drills.CollatzPeak(seq)))
	return nil
}
