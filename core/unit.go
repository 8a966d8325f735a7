package core

import "github.com/google/uuid"

// Unit is one self-contained, runnable teaching example. A unit prints its
// illustrative output through the RunContext it receives; it must not write
// to os.Stdout directly, otherwise the runner cannot capture it.
//
// Expected, when non-nil, is the exact sequence of lines the body is expected
// to print. Units without an expectation are "demonstration only" and pass as
// long as the body neither returns an error nor panics. Expected is treated
// as immutable once the unit is registered.
type Unit struct {
	// ID uniquely identifies the unit within a catalog (kebab-case recommended).
	ID string

	// Title is a short human-readable headline shown in listings.
	Title string

	// Topic groups related units for display and filtering (e.g. "Closures").
	Topic string

	// Source is an optional verbatim listing of the code being demonstrated,
	// shown by the CLI and included in generated explanations.
	Source string

	// Body executes the example. Printed output must go through rc.
	Body func(rc *RunContext) error

	// Expected is the ordered sequence of lines the body should print,
	// one entry per line. Nil means no expectation.
	Expected []string
}

// HasExpectation reports whether the unit carries an expected output to
// verify against.
func (u Unit) HasExpectation() bool { return u.Expected != nil }

// NewID generates a unique identifier for a run.
func NewID() string { return uuid.NewString() }
