// Package commands wires the exemplar CLI: listing the built-in catalog,
// running units with pass/fail verdicts and generating model-backed
// explanations.
package commands

import (
	"context"
	"fmt"

	"github.com/hupe1980/exemplar"
	"github.com/hupe1980/exemplar/builtin"
	"github.com/hupe1980/exemplar/core"
	"github.com/hupe1980/exemplar/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel  string
	logFormat string
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit string) error {
	rootCmd := newRootCommand(version, commit)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exemplar",
		Short: "Exemplar - runnable Go teaching examples",
		Long: `Exemplar maintains a catalog of short, independent Go examples, each
demonstrating one language feature with deterministic printed output.

Every example carries its expected output, so the catalog doubles as a
self-verifying regression suite:
  - list examples by topic
  - run one example (or all) and verify its output
  - show an example's source listing
  - generate a model-backed explanation of an example`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newTopicsCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newExplainCommand())

	return rootCmd
}

// newLogger builds the logger configured by the global flags.
func newLogger() logging.Logger {
	return logging.NewSlogLogger(logging.ParseLevel(logLevel), logFormat, false)
}

// newApp assembles an Exemplar seeded with the built-in catalog, writing
// captured example output to the given sink.
func newApp(sink core.Sink) *exemplar.Exemplar {
	return exemplar.New(func(o *exemplar.Options) {
		o.Catalog = builtin.Catalog()
		o.Sink = sink
		o.Logger = newLogger()
	})
}
