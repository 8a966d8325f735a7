package commands

import (
	"fmt"

	"github.com/hupe1980/exemplar/core"
	"github.com/hupe1980/exemplar/explain"
	"github.com/hupe1980/exemplar/model"
	"github.com/hupe1980/exemplar/model/anthropic"
	"github.com/hupe1980/exemplar/model/openai"
	"github.com/spf13/cobra"
)

func newExplainCommand() *cobra.Command {
	var (
		provider string
		stream   bool
	)

	cmd := &cobra.Command{
		Use:   "explain <id>",
		Short: "Generate a model-backed explanation of an example",
		Long: `Run an example, then send its source listing and captured output to a
language model and print the generated explanation.

Provider credentials are read from the environment (OPENAI_API_KEY,
ANTHROPIC_API_KEY). The mock provider needs no credentials and produces a
canned explanation; it exists for offline smoke tests.`,
		Example: `  # Explain with the default provider
  exemplar explain closure-counter

  # Stream the explanation from OpenAI as it is generated
  exemplar explain enum-iota --provider openai --stream`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newModel(provider)
			if err != nil {
				return err
			}

			app := newApp(core.DiscardSink{})

			unit, err := app.Catalog().Get(args[0])
			if err != nil {
				return err
			}

			res, err := app.Run(cmd.Context(), unit.ID)
			if err != nil {
				return err
			}

			e := explain.New(m, func(o *explain.Options) {
				o.Stream = stream
				o.Logger = newLogger()
			})

			out := cmd.OutOrStdout()
			if err := e.Explain(cmd.Context(), unit, res, out); err != nil {
				return err
			}
			fmt.Fprintln(out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "openai", "model provider (openai, anthropic, mock)")
	cmd.Flags().BoolVar(&stream, "stream", false, "stream the explanation as it is generated")

	return cmd
}

func newModel(provider string) (model.Model, error) {
	switch provider {
	case "openai":
		return openai.NewModel(), nil
	case "anthropic":
		return anthropic.NewModel(), nil
	case "mock":
		return model.NewMockModel("mock"), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
