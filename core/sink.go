package core

import (
	"fmt"
	"io"
)

// Sink receives the captured output of a run. The runner emits once per run,
// after the body has finished; sinks never see partial output.
type Sink interface {
	Emit(unitID string, lines []string) error
}

// WriterSink writes captured lines to an io.Writer, one line per entry.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{w: w} }

// Emit writes each captured line followed by a newline.
func (s *WriterSink) Emit(_ string, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.w, line); err != nil {
			return err
		}
	}
	return nil
}

// DiscardSink drops all output. Useful for tests and for runs where only the
// pass/fail verdict matters.
type DiscardSink struct{}

// Emit discards the lines.
func (DiscardSink) Emit(string, []string) error { return nil }
