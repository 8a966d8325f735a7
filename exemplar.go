// Package exemplar provides a high-level façade over the catalog and runner
// abstractions for maintaining a library of runnable, self-verifying teaching
// examples. Most applications interact with this package by:
//  1. Creating an Exemplar via New() (optionally seeding a catalog and
//     overriding the default in-memory services)
//  2. Registering one or more units (or starting from builtin.Catalog())
//  3. Running a single unit (Run) or the whole catalog (RunAll)
//
// The façade delegates execution to runner.Runner while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing.
package exemplar

import (
	"context"
	"iter"

	"github.com/hupe1980/exemplar/catalog"
	"github.com/hupe1980/exemplar/core"
	"github.com/hupe1980/exemplar/evaluation"
	"github.com/hupe1980/exemplar/history"
	"github.com/hupe1980/exemplar/logging"
	"github.com/hupe1980/exemplar/runner"
)

// Options configures the Exemplar instance.
type Options struct {
	// Catalog to execute against (defaults to an empty catalog).
	Catalog *catalog.Catalog

	// Sink receives captured unit output (defaults to discarding).
	Sink core.Sink

	// Evaluator compares output against expectations (defaults to ordered
	// line comparison).
	Evaluator core.Evaluator

	// History records run results in memory (defaults to an in-memory store).
	History core.RunStore

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Exemplar is the high-level façade aggregating the catalog and runner.
type Exemplar struct {
	catalog *catalog.Catalog
	runner  *runner.Runner
	history core.RunStore
}

// New creates a new Exemplar instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Exemplar {
	opts := Options{
		Catalog:   catalog.New(),
		Sink:      core.DiscardSink{},
		Evaluator: evaluation.NewLineEvaluator(),
		History:   history.NewInMemoryStore(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	r := runner.New(opts.Catalog, func(o *runner.Options) {
		o.Sink = opts.Sink
		o.Evaluator = opts.Evaluator
		o.History = opts.History
		o.Logger = opts.Logger
	})

	return &Exemplar{catalog: opts.Catalog, runner: r, history: opts.History}
}

// Register adds a unit to the underlying catalog.
func (x *Exemplar) Register(u core.Unit) error { return x.catalog.Register(u) }

// Catalog returns the underlying catalog for lookups and listings.
func (x *Exemplar) Catalog() *catalog.Catalog { return x.catalog }

// History returns the store recording past run results.
func (x *Exemplar) History() core.RunStore { return x.history }

// Run executes a single unit by id.
func (x *Exemplar) Run(ctx context.Context, unitID string) (core.RunResult, error) {
	return x.runner.Run(ctx, unitID)
}

// RunAll lazily executes every registered unit in catalog order.
func (x *Exemplar) RunAll(ctx context.Context) iter.Seq[core.RunResult] {
	return x.runner.RunAll(ctx)
}

// Summary returns aggregate pass/fail counts over all recorded runs.
func (x *Exemplar) Summary() core.Summary { return x.history.Summary() }
