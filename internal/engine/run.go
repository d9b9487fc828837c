package engine

// run.go - Execution orchestration for running demos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/leapstack-labs/drills/pkg/core"
)

// ErrDemoFailed wraps the first demo failure of a run.
var ErrDemoFailed = errors.New("engine: demo failed")

// Run executes every registered demo in registration order.
func (e *Engine) Run(ctx context.Context) (*core.Run, error) {
	return e.execute(ctx, e.registry.All())
}

// RunSelected executes only the named demos (names or aliases), still in
// registration order. An empty selection runs everything.
func (e *Engine) RunSelected(ctx context.Context, names []string) (*core.Run, error) {
	if len(names) == 0 {
		return e.Run(ctx)
	}
	demos, err := e.registry.Select(names)
	if err != nil {
		return nil, err
	}
	return e.execute(ctx, demos)
}

// execute runs demos sequentially. The first failure marks the run failed
// and every later demo skipped; a cancelled context marks the run cancelled.
func (e *Engine) execute(ctx context.Context, demos []*core.Demo) (*core.Run, error) {
	run := &core.Run{
		ID:        e.newID(),
		Status:    core.RunStatusRunning,
		StartedAt: time.Now(),
		Demos:     make([]*core.DemoRun, len(demos)),
	}

	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
		run.Demos[i] = &core.DemoRun{Name: d.Name, Title: d.Title, Status: core.DemoRunStatusPending}
	}

	e.logger.Info("starting run", "run_id", run.ID, "demos", names)
	e.emit(Event{Event: EventRunStart, RunID: run.ID, Demos: names})

	var runErr error
	for i, d := range demos {
		dr := run.Demos[i]

		if runErr != nil {
			dr.Status = core.DemoRunStatusSkipped
			continue
		}

		if err := ctx.Err(); err != nil {
			dr.Status = core.DemoRunStatusSkipped
			runErr = err
			continue
		}

		e.emit(Event{Event: EventDemoStart, RunID: run.ID, Demo: d.Name})
		if err := e.runDemo(ctx, d, dr); err != nil {
			runErr = fmt.Errorf("%w: %s: %w", ErrDemoFailed, d.Name, err)
		}
		e.emit(Event{
			Event:       EventDemoComplete,
			RunID:       run.ID,
			Demo:        d.Name,
			Status:      string(dr.Status),
			Output:      dr.Output,
			Error:       dr.Error,
			ExecutionMS: dr.ExecutionMS,
		})
	}

	completed := time.Now()
	run.CompletedAt = &completed

	switch {
	case runErr == nil:
		run.Status = core.RunStatusCompleted
		e.logger.Info("run completed", "run_id", run.ID)
	case errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded):
		run.Status = core.RunStatusCancelled
		run.Error = runErr.Error()
		e.logger.Info("run cancelled", "run_id", run.ID)
	default:
		run.Status = core.RunStatusFailed
		run.Error = runErr.Error()
		e.logger.Error("run failed", "run_id", run.ID, "error", runErr.Error())
	}

	counts := run.Counts()
	e.emit(Event{
		Event:      EventRunComplete,
		RunID:      run.ID,
		Status:     string(run.Status),
		TotalDemos: len(demos),
		Successful: counts[core.DemoRunStatusSuccess],
		Failed:     counts[core.DemoRunStatusFailed],
		Skipped:    counts[core.DemoRunStatusSkipped],
		TotalMS:    run.DurationMS(),
	})

	return run, runErr
}

// runDemo executes one demo into its own buffer and fills in dr.
func (e *Engine) runDemo(ctx context.Context, d *core.Demo, dr *core.DemoRun) (err error) {
	var buf bytes.Buffer
	env := &core.Env{Out: &buf, Logger: e.logger.With("demo", d.Name)}

	dr.Status = core.DemoRunStatusRunning
	dr.StartedAt = time.Now()
	e.logger.Debug("running demo", "demo", d.Name)

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("demo panicked", "demo", d.Name, "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}

		completed := time.Now()
		dr.CompletedAt = &completed
		dr.ExecutionMS = completed.Sub(dr.StartedAt).Milliseconds()
		dr.Output = splitLines(buf.String())

		if err != nil {
			dr.Status = core.DemoRunStatusFailed
			dr.Error = err.Error()
			e.logger.Debug("demo failed", "demo", d.Name, "error", err)
			return
		}
		dr.Status = core.DemoRunStatusSuccess
		e.logger.Debug("demo completed", "demo", d.Name, "lines", len(dr.Output), "execution_ms", dr.ExecutionMS)
	}()

	return d.Run(ctx, env)
}

// splitLines splits captured output into lines without the final newline.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
