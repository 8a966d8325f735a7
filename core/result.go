package core

import "time"

// FailureKind categorizes why a run did not pass.
type FailureKind string

const (
	// FailureNone marks a passing run.
	FailureNone FailureKind = ""
	// FailureExecution marks a run whose body returned an error or panicked.
	FailureExecution FailureKind = "execution"
	// FailureMismatch marks a run whose captured output diverged from the
	// unit's expectation.
	FailureMismatch FailureKind = "mismatch"
)

// RunResult is the outcome of executing one unit. Results are created fresh
// per run and must be treated as immutable after creation; they are reported
// and then discarded (or kept in an in-memory history, never persisted).
type RunResult struct {
	RunID    string        `json:"run_id"`
	UnitID   string        `json:"unit_id"`
	Output   []string      `json:"output,omitempty"`
	Passed   bool          `json:"passed"`
	Failure  FailureKind   `json:"failure,omitempty"`
	Err      string        `json:"error,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
}

// Failed reports whether the run did not pass.
func (r RunResult) Failed() bool { return !r.Passed }

// Summary aggregates run outcomes.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}
