package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/drills/internal/demos"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/leapstack-labs/drills/internal/engine"
	"github.com/spf13/cobra"
)

const replPrompt = "drills> "

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Classify numbers interactively",
		Long: `Start an interactive prompt. Each number typed is classified with
FizzBuzz; dot-commands compute Collatz trajectories and run demos.

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd, nil)
			if err != nil {
				return err
			}
			return runREPL(cmd, cmdCtx.Engine)
		},
	}
}

func runREPL(cmd *cobra.Command, eng *engine.Engine) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	rlCfg := &readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile(),
		AutoComplete:    newDemoCompleter(eng),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          out,
		Stderr:          errOut,
	}
	if in := cmd.InOrStdin(); in != os.Stdin {
		rlCfg.Stdin = io.NopCloser(in)
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(out, "drills REPL")
	_, _ = fmt.Fprintln(out, "Type a number to classify it, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if quit := evalREPLLine(ctx, out, errOut, eng, line); quit {
			break
		}
	}

	return nil
}

// evalREPLLine handles one line of input and reports whether to exit.
func evalREPLLine(ctx context.Context, out, errOut io.Writer, eng *engine.Engine, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if !strings.HasPrefix(line, ".") {
		n, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %q is not a number (type .help for commands)\n", line)
			return false
		}
		_, _ = fmt.Fprintln(out, drills.FizzBuzz(uint32(n)))
		return false
	}

	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(out)

	case ".collatz":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(errOut, "Usage: .collatz <n>")
			return false
		}
		start, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: invalid number %q\n", parts[1])
			return false
		}
		seq, err := drills.CollatzSequence(start)
		if len(seq) > 0 {
			_, _ = fmt.Fprintln(out, demos.JoinTrajectory(seq))
		}
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			return false
		}
		_, _ = fmt.Fprintf(out, "%d steps\n", len(seq)-1)

	case ".demos":
		_, _ = fmt.Fprintln(out, strings.Join(eng.Registry().Names(), " "))

	case ".run":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(errOut, "Usage: .run <demo> [demo...]")
			return false
		}
		run, err := eng.RunSelected(ctx, parts[1:])
		if run != nil {
			for _, dr := range run.Demos {
				for _, l := range dr.Output {
					_, _ = fmt.Fprintln(out, l)
				}
			}
		}
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}

	case ".clear":
		_, _ = fmt.Fprint(out, "\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  <n>              Classify n with FizzBuzz
  .collatz <n>     Show the Collatz trajectory of n
  .demos           List demo names
  .run <demo...>   Run demos and print their output
  .clear           Clear the screen
  .quit / .exit    Exit the REPL

Tips:
  - Use arrow keys to navigate history
  - Tab completion works for commands and demo names
`
	_, _ = fmt.Fprintln(w, help)
}

// historyFile returns a per-user history path, or "" when none is available.
func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "drills")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

// newDemoCompleter creates a readline completer for dot-commands and demo names.
func newDemoCompleter(eng *engine.Engine) *readline.PrefixCompleter {
	var demoItems []readline.PrefixCompleterInterface
	for _, name := range eng.Registry().Names() {
		demoItems = append(demoItems, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".collatz"),
		readline.PcItem(".demos"),
		readline.PcItem(".run", demoItems...),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
