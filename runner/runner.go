package runner

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/exemplar/catalog"
	"github.com/hupe1980/exemplar/core"
	"github.com/hupe1980/exemplar/evaluation"
	"github.com/hupe1980/exemplar/history"
	"github.com/hupe1980/exemplar/logging"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Sink receives the captured output of every run.
	Sink core.Sink
	// Evaluator compares captured output to a unit's expectation.
	Evaluator core.Evaluator
	// History records run results for the lifetime of the process.
	History core.RunStore
	// Logger receives structured run diagnostics.
	Logger logging.Logger
}

// Runner executes units from a catalog: it creates a fresh run context per
// execution, captures printed output, recovers panics, evaluates expected
// output and records the result. Units run synchronously, one at a time;
// public methods are safe for concurrent use because the runner itself holds
// no mutable per-run state.
type Runner struct {
	catalog   *catalog.Catalog
	sink      core.Sink
	evaluator core.Evaluator
	history   core.RunStore
	logger    logging.Logger
}

// New constructs a Runner over cat with optional overrides.
func New(cat *catalog.Catalog, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Sink:      core.DiscardSink{},
		Evaluator: evaluation.NewLineEvaluator(),
		History:   history.NewInMemoryStore(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		catalog:   cat,
		sink:      opts.Sink,
		evaluator: opts.Evaluator,
		history:   opts.History,
		logger:    opts.Logger,
	}
}

// Run executes the unit registered under unitID and returns its result.
// The returned error is non-nil only when the unit cannot be resolved;
// execution failures (body error, panic, output mismatch) are reported in
// the result and never crash the process.
func (r *Runner) Run(ctx context.Context, unitID string) (core.RunResult, error) {
	unit, err := r.catalog.Get(unitID)
	if err != nil {
		return core.RunResult{}, fmt.Errorf("failed to resolve unit: %w", err)
	}

	return r.execute(ctx, unit), nil
}

// RunAll returns a lazy sequence producing one result per registered unit in
// catalog order. Individual failures do not short-circuit the sequence; a
// cancelled context ends it early.
func (r *Runner) RunAll(ctx context.Context) iter.Seq[core.RunResult] {
	return func(yield func(core.RunResult) bool) {
		for unit := range r.catalog.All() {
			if ctx.Err() != nil {
				return
			}
			if !yield(r.execute(ctx, unit)) {
				return
			}
		}
	}
}

// History returns the run store recording past results.
func (r *Runner) History() core.RunStore { return r.history }

// execute runs one unit to completion with a fresh capture buffer.
func (r *Runner) execute(ctx context.Context, unit core.Unit) core.RunResult {
	runID := core.NewID()
	started := time.Now()

	rc := core.NewRunContext(ctx, runID, unit, r.logger)

	err := r.invoke(rc, unit)
	lines := rc.Lines()

	res := core.RunResult{
		RunID:    runID,
		UnitID:   unit.ID,
		Output:   lines,
		Started:  started,
		Duration: time.Since(started),
	}

	switch {
	case err != nil:
		res.Failure = core.FailureExecution
		res.Err = err.Error()
	default:
		ok, detail := r.evaluator.Evaluate(unit, lines)
		if ok {
			res.Passed = true
		} else {
			res.Failure = core.FailureMismatch
			res.Err = "output mismatch"
			res.Detail = detail
		}
	}

	if emitErr := r.sink.Emit(unit.ID, lines); emitErr != nil {
		r.logger.Warn("failed to emit output for unit %s: %v", unit.ID, emitErr)
	}

	if histErr := r.history.Append(res); histErr != nil {
		r.logger.Warn("failed to record result for unit %s: %v", unit.ID, histErr)
	}

	r.logger.Debug("runner completed unit unit_id=%s run_id=%s passed=%t duration=%s",
		unit.ID, runID, res.Passed, res.Duration)

	return res
}

// invoke calls the unit body, converting a panic into an error so a broken
// example cannot take down the runner process.
func (r *Runner) invoke(rc *core.RunContext, unit core.Unit) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("unit panicked: %v", rec)
		}
	}()

	return unit.Body(rc)
}
