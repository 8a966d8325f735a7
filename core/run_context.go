package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/exemplar/logging"
)

// RunContext is the execution environment handed to a unit body. It embeds
// the caller's context for cancellation and exposes a print surface whose
// output is captured into a per-run buffer. Each run gets a fresh RunContext;
// nothing is shared between runs.
type RunContext struct {
	context.Context

	runID  string
	unit   Unit
	buf    strings.Builder
	logger logging.Logger
}

// NewRunContext creates the execution environment for a single run of unit.
// A nil logger is substituted with a NoOpLogger.
func NewRunContext(ctx context.Context, runID string, unit Unit, logger logging.Logger) *RunContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &RunContext{
		Context: ctx,
		runID:   runID,
		unit:    unit,
		logger:  logger,
	}
}

// RunID returns the unique identifier of this run.
func (rc *RunContext) RunID() string { return rc.runID }

// Unit returns the unit being executed.
func (rc *RunContext) Unit() Unit { return rc.unit }

// Logger returns the logger bound to this run.
func (rc *RunContext) Logger() logging.Logger { return rc.logger }

// Printf appends formatted text to the captured output.
func (rc *RunContext) Printf(format string, args ...any) {
	fmt.Fprintf(&rc.buf, format, args...)
}

// Println appends its operands followed by a newline, spaced like fmt.Println.
func (rc *RunContext) Println(args ...any) {
	fmt.Fprintln(&rc.buf, args...)
}

// Print appends its operands like fmt.Print.
func (rc *RunContext) Print(args ...any) {
	fmt.Fprint(&rc.buf, args...)
}

// Lines returns the captured output split into lines. A single trailing
// newline does not produce an empty final entry; no output yields nil.
func (rc *RunContext) Lines() []string {
	out := rc.buf.String()
	if out == "" {
		return nil
	}
	out = strings.TrimSuffix(out, "\n")
	return strings.Split(out, "\n")
}

// Raw returns the captured output exactly as written.
func (rc *RunContext) Raw() string { return rc.buf.String() }
