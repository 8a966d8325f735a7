// Package evaluation compares captured unit output against a unit's expected
// output. The default LineEvaluator performs ordered line-by-line comparison
// and reports the first divergence in a human readable form.
package evaluation

import (
	"fmt"

	"github.com/hupe1980/exemplar/core"
)

// LineEvaluator compares output to the unit's expectation line by line.
// Comparison is exact: no trimming, no normalization. A unit without an
// expectation always evaluates ok.
type LineEvaluator struct{}

// NewLineEvaluator constructs a LineEvaluator.
func NewLineEvaluator() *LineEvaluator { return &LineEvaluator{} }

// Evaluate implements core.Evaluator.
func (e *LineEvaluator) Evaluate(unit core.Unit, output []string) (bool, string) {
	if !unit.HasExpectation() {
		return true, ""
	}

	expected := unit.Expected
	for i := range min(len(expected), len(output)) {
		if output[i] != expected[i] {
			return false, fmt.Sprintf("line %d: expected %q, got %q", i+1, expected[i], output[i])
		}
	}

	if len(output) != len(expected) {
		return false, fmt.Sprintf("expected %d line(s), got %d", len(expected), len(output))
	}

	return true, ""
}

var _ core.Evaluator = (*LineEvaluator)(nil)
