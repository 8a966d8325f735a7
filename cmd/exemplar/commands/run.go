package commands

import (
	"errors"
	"fmt"

	"github.com/hupe1980/exemplar/core"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run [id]",
		Short: "Run one example (or all) and verify its output",
		Long: `Execute an example with output capture. The captured output is printed
and, when the example carries an expected output, compared against it.

Exit code 0 means the run passed (or carried no expectation); exit code 1
means the output mismatched or the example body failed.`,
		Example: `  # Run a single example
  exemplar run closure-counter

  # Run the whole catalog with a per-example verdict
  exemplar run --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if len(args) != 0 {
					return errors.New("--all takes no example id")
				}
				return runAll(cmd)
			}
			if len(args) != 1 {
				return errors.New("an example id is required unless --all is set")
			}
			return runOne(cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every registered example")

	return cmd
}

func runOne(cmd *cobra.Command, id string) error {
	app := newApp(core.NewWriterSink(cmd.OutOrStdout()))

	res, err := app.Run(cmd.Context(), id)
	if err != nil {
		return err
	}

	if res.Failed() {
		if res.Detail != "" {
			return fmt.Errorf("example %s failed (%s): %s", id, res.Failure, res.Detail)
		}
		return fmt.Errorf("example %s failed (%s): %s", id, res.Failure, res.Err)
	}

	return nil
}

func runAll(cmd *cobra.Command) error {
	// Captured output is suppressed in --all mode; only verdicts are shown.
	app := newApp(core.DiscardSink{})
	out := cmd.OutOrStdout()

	for res := range app.RunAll(cmd.Context()) {
		verdict := "PASS"
		note := ""
		if res.Failed() {
			verdict = "FAIL"
			note = "  (" + res.Err + ")"
			if res.Detail != "" {
				note = "  (" + res.Detail + ")"
			}
		}
		fmt.Fprintf(out, "%s  %-32s%s\n", verdict, res.UnitID, note)
	}

	sum := app.Summary()
	fmt.Fprintf(out, "\n%d run, %d passed, %d failed\n", sum.Total, sum.Passed, sum.Failed)

	if err := cmd.Context().Err(); err != nil {
		return err
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d example(s) failed", sum.Failed)
	}

	return nil
}
