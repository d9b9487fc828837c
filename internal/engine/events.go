package engine

import (
	"time"

	"github.com/google/uuid"
)

// Event kinds emitted during a run.
const (
	EventRunStart     = "run_start"
	EventDemoStart    = "demo_start"
	EventDemoComplete = "demo_complete"
	EventRunComplete  = "run_complete"
)

// Event is a progress notification, suitable for JSON lines output.
type Event struct {
	Event       string   `json:"event"`
	RunID       string   `json:"run_id"`
	Timestamp   string   `json:"timestamp"`
	Demo        string   `json:"demo,omitempty"`
	Demos       []string `json:"demos,omitempty"`
	Status      string   `json:"status,omitempty"`
	Output      []string `json:"output,omitempty"`
	Error       string   `json:"error,omitempty"`
	ExecutionMS int64    `json:"execution_ms,omitempty"`
	TotalDemos  int      `json:"total_demos,omitempty"`
	Successful  int      `json:"successful,omitempty"`
	Failed      int      `json:"failed,omitempty"`
	Skipped     int      `json:"skipped,omitempty"`
	TotalMS     int64    `json:"total_ms,omitempty"`
}

func (e *Engine) emit(ev Event) {
	if e.onEvent == nil {
		return
	}
	ev.Timestamp = time.Now().UTC().Format(time.RFC3339)
	e.onEvent(ev)
}

func newRunID() string {
	return uuid.NewString()
}
