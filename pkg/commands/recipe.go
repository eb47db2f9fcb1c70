package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/glossary/pkg/commands/options"
	"tableflip.dev/glossary/pkg/runner/lookup"
)

func addRecipe(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "recipe <id>",
		Short: "show a recipe's details and similar recipes",
		Example: `
glossary recipe 6851
glossary recipe 6851 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			svc, err := catalogService(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			d := lookup.Detail{
				Service: svc,
				ID:      args[0],
				Output:  lookup.Output{JSON: oo.JSON, Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(d.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
