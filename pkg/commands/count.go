package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/glossary/pkg/commands/options"
	"tableflip.dev/glossary/pkg/runner/lookup"
)

func addCount(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "count",
		Short: "print the number of recipes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			svc, err := catalogService(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			c := lookup.Count{
				Service: svc,
				Output:  lookup.Output{JSON: oo.JSON, Out: cmd.OutOrStdout()},
			}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
