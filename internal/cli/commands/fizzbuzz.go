package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/drills/internal/cli/output"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/spf13/cobra"
)

// NewFizzBuzzCommand creates the fizzbuzz command.
func NewFizzBuzzCommand() *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "fizzbuzz [n]",
		Short: "Classify the numbers 1..n",
		Long: `Print "fizz" for multiples of 3, "buzz" for multiples of 5, "fizzbuzz"
for multiples of both, and the number itself otherwise.

n defaults to fizzbuzz.limit from the configuration.`,
		Example: `  drills fizzbuzz 15
  drills fizzbuzz --only 45
  drills fizzbuzz 100 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContextWithoutEngine(cmd)
			r := cmdCtx.Renderer

			if cmd.Flags().Changed("only") {
				n, err := parseUint32(only)
				if err != nil {
					return err
				}
				return renderFizzBuzz(r, []uint32{n}, false)
			}

			limit := cmdCtx.Cfg.FizzBuzz.Limit
			if len(args) > 0 {
				n, err := parseUint32(args[0])
				if err != nil {
					return err
				}
				limit = n
			}

			numbers := make([]uint32, 0, min(limit, drills.MaxPrealloc))
			for i := uint32(1); i <= limit && i != 0; i++ {
				numbers = append(numbers, i)
			}
			return renderFizzBuzz(r, numbers, true)
		},
	}

	cmd.Flags().StringVar(&only, "only", "", "Classify a single number")

	return cmd
}

func renderFizzBuzz(r *output.Renderer, numbers []uint32, withHeader bool) error {
	if r.EffectiveMode() == output.ModeJSON {
		out := output.FizzBuzzOutput{Results: make([]output.FizzBuzzResult, 0, len(numbers))}
		for _, n := range numbers {
			out.Results = append(out.Results, output.FizzBuzzResult{
				N:        n,
				Category: drills.Classify(n).String(),
				Text:     drills.FizzBuzz(n),
			})
		}
		return r.JSON(out)
	}

	lines := make([]string, len(numbers))
	for i, n := range numbers {
		lines[i] = drills.FizzBuzz(n)
	}

	if !withHeader {
		r.Println(lines[0])
		return nil
	}
	r.Header(1, fmt.Sprintf("FizzBuzz 1..%d", len(numbers)))
	r.Lines(lines)
	return nil
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: must be an integer between 0 and %d", s, uint32(1<<32-1))
	}
	return uint32(n), nil
}
