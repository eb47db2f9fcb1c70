package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/glossary/pkg/commands/options"
	"tableflip.dev/glossary/pkg/runner/lookup"
)

func addIngredients(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "ingredients",
		Short: "list the ingredients recipes can be filtered by",
		Example: `
glossary ingredients
glossary ingredients --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			svc, err := catalogService(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			i := lookup.Ingredients{
				Service: svc,
				Output:  lookup.Output{JSON: oo.JSON, Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
