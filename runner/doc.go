// Package runner implements the execution layer of exemplar.
//
// The Runner resolves units from a catalog, executes each body with a fresh
// output-capturing run context, evaluates captured output against the unit's
// optional expectation and records a RunResult per execution.
//
// # Responsibilities (abridged)
//   - Unit resolution and synchronous one-at-a-time execution
//   - Output capture & delivery to a caller-supplied sink
//   - Panic recovery (a broken example never crashes the process)
//   - Expectation evaluation & result recording
//
// See runner.go for the operational implementation details.
package runner
