package commands

import (
	"fmt"

	"github.com/hupe1980/exemplar/core"
	"github.com/spf13/cobra"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print an example's source listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp(core.DiscardSink{})

			u, err := app.Catalog().Get(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n\n", u.Title, u.Topic)
			if u.Source == "" {
				fmt.Fprintln(out, "no source listing available")
				return nil
			}
			fmt.Fprintln(out, u.Source)

			return nil
		},
	}
}
