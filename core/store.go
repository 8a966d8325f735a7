package core

// Evaluator decides whether a unit's captured output satisfies its
// expectation. Implementations must not mutate the unit or the output slice.
// detail carries a human-readable description of the first divergence when
// ok is false.
type Evaluator interface {
	Evaluate(unit Unit, output []string) (ok bool, detail string)
}

// RunStore records run results for the lifetime of the process. Stores are
// volatile by design; nothing in exemplar persists results to disk.
type RunStore interface {
	// Append records a result. Results are immutable once appended.
	Append(res RunResult) error
	// List returns all recorded results in append order.
	List() []RunResult
	// Summary returns aggregate pass/fail counts over all recorded results.
	Summary() Summary
}
