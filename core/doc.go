// Package core defines the shared domain types of exemplar: the Unit model
// for runnable teaching examples, the RunContext handed to unit bodies for
// captured printing, the RunResult produced by each execution, and the small
// service interfaces (Sink, Evaluator, RunStore) implemented elsewhere.
//
// The package is intentionally dependency-light so every other package can
// import it without cycles.
package core
