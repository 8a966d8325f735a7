// Package explain turns a unit's source listing and captured output into a
// natural-language explanation by prompting a model.Model. It is a thin
// orchestration layer: prompt construction here, generation in the provider
// adapters.
package explain

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hupe1980/exemplar/core"
	"github.com/hupe1980/exemplar/logging"
	"github.com/hupe1980/exemplar/model"
)

// DefaultInstructions is the system prompt used when none is supplied.
const DefaultInstructions = "You are a Go tutor. Explain the given example " +
	"concisely for a reader learning the language: what the code demonstrates, " +
	"why it prints the output it does, and one common pitfall. Keep it short."

// Options configures an Explainer.
type Options struct {
	// Instructions overrides the system prompt.
	Instructions string
	// Stream requests incremental output where the provider supports it.
	Stream bool
	// Logger receives call diagnostics.
	Logger logging.Logger
}

// Explainer generates explanations for catalog units.
type Explainer struct {
	model        model.Model
	instructions string
	stream       bool
	logger       logging.Logger
}

// New constructs an Explainer over m with optional overrides.
func New(m model.Model, optFns ...func(o *Options)) *Explainer {
	opts := Options{
		Instructions: DefaultInstructions,
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Explainer{
		model:        m,
		instructions: opts.Instructions,
		stream:       opts.Stream,
		logger:       opts.Logger,
	}
}

// Explain generates an explanation of unit given the result of running it and
// writes the explanation text to w as it arrives.
func (e *Explainer) Explain(ctx context.Context, unit core.Unit, res core.RunResult, w io.Writer) error {
	prompt := BuildPrompt(unit, res)
	start := time.Now()

	respCh, errCh := e.model.Generate(ctx, model.Request{
		Instructions: e.instructions,
		Prompt:       prompt,
		Stream:       e.stream,
	})

	var wrotePartial bool
	for respCh != nil || errCh != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case resp, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			if resp.Partial {
				if _, err := io.WriteString(w, resp.Text); err != nil {
					return fmt.Errorf("failed to write explanation: %w", err)
				}
				wrotePartial = true
				continue
			}
			// When partial chunks were already written the final response is
			// their aggregate and must not be duplicated.
			if !wrotePartial {
				if _, err := io.WriteString(w, resp.Text); err != nil {
					return fmt.Errorf("failed to write explanation: %w", err)
				}
			}

		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				e.logger.Error("explanation generation failed for unit %s: %v", unit.ID, err)
				return fmt.Errorf("model generation failed: %w", err)
			}
		}
	}

	e.logger.Debug("explanation generated unit_id=%s model=%s duration=%s",
		unit.ID, e.model.Info().Name, time.Since(start))

	return nil
}

// BuildPrompt renders the user-level prompt from a unit and its run result.
func BuildPrompt(unit core.Unit, res core.RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Example %q (topic: %s)\n", unit.Title, unit.Topic)
	if unit.Source != "" {
		fmt.Fprintf(&b, "\nCode:\n%s\n", unit.Source)
	}
	if len(res.Output) > 0 {
		b.WriteString("\nPrinted output:\n")
		for _, line := range res.Output {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	if res.Failed() {
		fmt.Fprintf(&b, "\nThe run FAILED (%s): %s\n", res.Failure, res.Err)
		if res.Detail != "" {
			fmt.Fprintf(&b, "Detail: %s\n", res.Detail)
		}
	}

	return b.String()
}
