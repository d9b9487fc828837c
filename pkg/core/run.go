package core

import "time"

// RunStatus represents the status of a demo run session.
type RunStatus string

// Run status constants.
const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// Run represents one pass over a sequence of demos.
type Run struct {
	ID          string
	Status      RunStatus
	StartedAt   time.Time
	CompletedAt *time.Time
	Error       string
	Demos       []*DemoRun
}

// DemoRunStatus represents the status of an individual demo execution.
type DemoRunStatus string

// Demo run status constants.
const (
	DemoRunStatusPending DemoRunStatus = "pending"
	DemoRunStatusRunning DemoRunStatus = "running"
	DemoRunStatusSuccess DemoRunStatus = "success"
	DemoRunStatusFailed  DemoRunStatus = "failed"
	DemoRunStatusSkipped DemoRunStatus = "skipped"
)

// DemoRun represents a single execution of a demo within a run.
type DemoRun struct {
	Name        string
	Title       string
	Status      DemoRunStatus
	Output      []string
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
	ExecutionMS int64
}

// Counts returns how many demos ended in each status.
func (r *Run) Counts() map[DemoRunStatus]int {
	counts := make(map[DemoRunStatus]int)
	for _, d := range r.Demos {
		counts[d.Status]++
	}
	return counts
}

// DurationMS returns the wall-clock duration of a completed run.
func (r *Run) DurationMS() int64 {
	if r.CompletedAt == nil {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt).Milliseconds()
}
