// Package output renders command results for terminals, agents and scripts.
//
// Three concrete modes exist:
//   - text: styled with lipgloss, for humans at a terminal
//   - markdown: plain, structured, no ANSI codes; the default when piped
//   - json: machine-readable documents
//
// ModeAuto picks text for a TTY and markdown otherwise.
package output

import (
	"fmt"
	"strings"
)

// OutputMode selects how a Renderer formats results.
type OutputMode string //nolint:revive // output.OutputMode reads better at call sites than output.Kind

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Modes lists the accepted --output values.
var Modes = []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}

// Mode converts a user-supplied string to an OutputMode.
// Unknown or empty values fall back to ModeAuto.
func Mode(s string) OutputMode {
	m, err := ParseMode(s)
	if err != nil {
		return ModeAuto
	}
	return m
}

// ParseMode converts s to an OutputMode, rejecting unknown values.
func ParseMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "text", "tty":
		return ModeText, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	case "json":
		return ModeJSON, nil
	default:
		return ModeAuto, fmt.Errorf("unknown output format %q (want one of: %s)", s, strings.Join(Modes, ", "))
	}
}
