package output

// ListOutput is the JSON document for "drills list".
type ListOutput struct {
	Demos []DemoInfo `json:"demos"`
	Total int        `json:"total"`
}

// DemoInfo describes one registered demo.
type DemoInfo struct {
	Order   int      `json:"order"`
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Aliases []string `json:"aliases,omitempty"`
	Summary string   `json:"summary"`
}

// RunOutput is the JSON report for "drills run".
type RunOutput struct {
	ID          string       `json:"id"`
	Status      string       `json:"status"`
	StartedAt   string       `json:"started_at"`
	CompletedAt string       `json:"completed_at,omitempty"`
	DurationMS  int64        `json:"duration_ms"`
	Error       string       `json:"error,omitempty"`
	Demos       []DemoResult `json:"demos"`
	Summary     RunSummary   `json:"summary"`
}

// DemoResult is one demo's outcome within a RunOutput.
type DemoResult struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	Output      []string `json:"output"`
	Error       string   `json:"error,omitempty"`
	ExecutionMS int64    `json:"execution_ms"`
}

// RunSummary counts demo outcomes.
type RunSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}

// FizzBuzzOutput is the JSON document for "drills fizzbuzz".
type FizzBuzzOutput struct {
	Results []FizzBuzzResult `json:"results"`
}

// FizzBuzzResult classifies a single number.
type FizzBuzzResult struct {
	N        uint32 `json:"n"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// CollatzOutput is the JSON document for "drills collatz".
type CollatzOutput struct {
	Start      uint64   `json:"start"`
	Trajectory []uint64 `json:"trajectory"`
	Steps      int      `json:"steps"`
	Peak       uint64   `json:"peak"`
	Error      string   `json:"error,omitempty"`
}

// TransposeOutput is the JSON document for "drills transpose".
type TransposeOutput struct {
	Matrix     [][]int32 `json:"matrix"`
	Transposed [][]int32 `json:"transposed"`
}
