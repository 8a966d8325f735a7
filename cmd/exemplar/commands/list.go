package commands

import (
	"fmt"

	"github.com/hupe1980/exemplar/core"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered examples",
		Example: `  # List every example
  exemplar list

  # List one topic
  exemplar list --topic Closures`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp(core.DiscardSink{})

			units := app.Catalog().All()
			if topic != "" {
				units = app.Catalog().ByTopic(topic)
			}

			count := 0
			for u := range units {
				fmt.Fprintf(cmd.OutOrStdout(), "%-32s %-16s %s\n", u.ID, u.Topic, u.Title)
				count++
			}
			if count == 0 && topic != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "no examples for topic %q\n", topic)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "only list examples of this topic")

	return cmd
}

func newTopicsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics with example counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp(core.DiscardSink{})

			for _, topic := range app.Catalog().Topics() {
				count := 0
				for range app.Catalog().ByTopic(topic) {
					count++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d\n", topic, count)
			}

			return nil
		},
	}
}
