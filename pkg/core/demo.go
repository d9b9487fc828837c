package core

import (
	"context"
	"io"
	"log/slog"
)

// RunFunc executes a demo, writing its human-readable lines to env.Out.
type RunFunc func(ctx context.Context, env *Env) error

// Demo is an isolated exercise invoked once for its printed output.
type Demo struct {
	// Name is the stable identifier used by --select and the registry.
	Name string
	// Title is the heading shown above the demo output.
	Title string
	// Aliases are alternative names accepted by the registry.
	Aliases []string
	// Summary is a one-line description for `drills list`.
	Summary string
	// Run produces the demo output.
	Run RunFunc
}

// Env is what a demo gets to work with.
type Env struct {
	Out    io.Writer
	Logger *slog.Logger
}
